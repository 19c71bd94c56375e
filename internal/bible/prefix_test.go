package bible

import (
	"strings"
	"testing"
)

// Abbreviations printed in the book menu; users learn these.
var menuKeys = map[Book]string{
	Genesis: "ge", Exodus: "ex", Leviticus: "le", Numbers: "nu", Deuteronomy: "de",
	Joshua: "jos", Judges: "judg", Ruth: "ru", FirstSamuel: "1s", SecondSamuel: "2s",
	FirstKings: "1k", SecondKings: "2k", FirstChronicles: "1ch", SecondChronicles: "2ch",
	Ezra: "ezr", Nehemiah: "ne", Esther: "es", Job: "job", Psalms: "ps", Proverbs: "pr",
	Ecclesiastes: "ec", SongOfSolomon: "s", Isaiah: "i", Jeremiah: "je", Lamentations: "la",
	Ezekiel: "eze", Daniel: "da", Hosea: "ho", Joel: "joe", Amos: "am", Obadiah: "o",
	Jonah: "jon", Micah: "mi", Nahum: "na", Habakkuk: "hab", Zephaniah: "zep", Haggai: "hag",
	Zechariah: "zec", Malachi: "mal", Matthew: "mat", Mark: "mar", Luke: "lu", John: "joh",
	Acts: "ac", Romans: "ro", FirstCorinthians: "1co", SecondCorinthians: "2co",
	Galatians: "ga", Ephesians: "ep", Philippians: "phili", Colossians: "c",
	FirstThessalonians: "1th", SecondThessalonians: "2th", FirstTimothy: "1ti",
	SecondTimothy: "2ti", Titus: "t", Philemon: "phile", Hebrews: "he", James: "ja",
	FirstPeter: "1p", SecondPeter: "2p", FirstJohn: "1j", SecondJohn: "2j", ThirdJohn: "3",
	Jude: "jude", Revelation: "re",
}

func TestPrefix_MatchesMenuKeys(t *testing.T) {
	if len(menuKeys) != Count {
		t.Fatalf("expected %d menu keys, got %d", Count, len(menuKeys))
	}
	for b, want := range menuKeys {
		if got := b.Prefix(); got != want {
			t.Errorf("%s: expected prefix %q, got %q", b, want, got)
		}
	}
}

func TestResolve_EveryBook(t *testing.T) {
	for _, b := range Books() {
		key := b.Prefix()

		got, ok := Resolve(key)
		if !ok || got != b {
			t.Errorf("Resolve(%q) = %v, %v; expected %s", key, got, ok, b)
		}

		for l := 1; l < len(key); l++ {
			if got, ok := Resolve(key[:l]); ok {
				t.Errorf("Resolve(%q) should not resolve, got %s", key[:l], got)
			}
		}
	}
}

func TestResolve_JobScenario(t *testing.T) {
	for _, partial := range []string{"", "j", "jo"} {
		if b, ok := Resolve(partial); ok {
			t.Errorf("Resolve(%q) should not resolve, got %s", partial, b)
		}
	}
	if b, ok := Resolve("job"); !ok || b != Job {
		t.Errorf("expected job to resolve to Job, got %v, %v", b, ok)
	}
}

func TestResolve_Unknown(t *testing.T) {
	for _, input := range []string{"x", "genesis", "GE", "qq", "joba"} {
		if b, ok := Resolve(input); ok {
			t.Errorf("Resolve(%q) should not resolve, got %s", input, b)
		}
	}
}

func TestPrefix_TableInvariants(t *testing.T) {
	keys := Books()
	for _, a := range keys {
		if len(a.Prefix()) >= MaxPrefixLen {
			t.Errorf("%s: prefix %q does not fit the menu input", a, a.Prefix())
		}
		if !strings.HasPrefix(normalize(a.Name()), a.Prefix()) {
			t.Errorf("%s: prefix %q is not a prefix of its name", a, a.Prefix())
		}
		for _, b := range keys {
			if a != b && strings.HasPrefix(b.Prefix(), a.Prefix()) {
				t.Errorf("key %q (%s) is a prefix of %q (%s)", a.Prefix(), a, b.Prefix(), b)
			}
		}
	}
}

func TestBuildPrefixes_RejectsAmbiguousNames(t *testing.T) {
	names := normalizedNames()
	names[64] = "judges" // Jude renamed onto Judges: neither has a unique prefix

	if _, _, err := buildPrefixes(names); err == nil {
		t.Error("expected an error for duplicate names")
	}
}

func TestBuildPrefixes_RejectsWrongLength(t *testing.T) {
	if _, _, err := buildPrefixes([]string{"genesis"}); err == nil {
		t.Error("expected an error for a short name list")
	}
}
