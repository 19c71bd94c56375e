// Package bible holds the fixed structure of the 66-book canon: book order,
// display names, chapter bounds and the abbreviation table used by the book
// menu.
package bible

// Count is the number of books in the canon.
const Count = 66

// TotalChapters is the number of chapters across all books.
const TotalChapters = 1189

// Testament groups books for menu layout.
type Testament int

const (
	OldTestament Testament = iota
	NewTestament
)

// Book identifies one of the 66 books. The index is unexported so a Book
// can only come from this package; the zero value is Genesis.
type Book struct {
	idx uint8
}

type entry struct {
	name     string
	chapters int
}

// catalog is indexed by rank-1.
var catalog = [Count]entry{
	// ── Old Testament ──────────────────────────────────────────────────────────
	{"Genesis", 50},
	{"Exodus", 40},
	{"Leviticus", 27},
	{"Numbers", 36},
	{"Deuteronomy", 34},
	{"Joshua", 24},
	{"Judges", 21},
	{"Ruth", 4},
	{"1 Samuel", 31},
	{"2 Samuel", 24},
	{"1 Kings", 22},
	{"2 Kings", 25},
	{"1 Chronicles", 29},
	{"2 Chronicles", 36},
	{"Ezra", 10},
	{"Nehemiah", 13},
	{"Esther", 10},
	{"Job", 42},
	{"Psalms", 150},
	{"Proverbs", 31},
	{"Ecclesiastes", 12},
	{"Song of Solomon", 8},
	{"Isaiah", 66},
	{"Jeremiah", 52},
	{"Lamentations", 5},
	{"Ezekiel", 48},
	{"Daniel", 12},
	{"Hosea", 14},
	{"Joel", 3},
	{"Amos", 9},
	{"Obadiah", 1},
	{"Jonah", 4},
	{"Micah", 7},
	{"Nahum", 3},
	{"Habakkuk", 3},
	{"Zephaniah", 3},
	{"Haggai", 2},
	{"Zechariah", 14},
	{"Malachi", 4},
	// ── New Testament ─────────────────────────────────────────────────────────
	{"Matthew", 28},
	{"Mark", 16},
	{"Luke", 24},
	{"John", 21},
	{"Acts", 28},
	{"Romans", 16},
	{"1 Corinthians", 16},
	{"2 Corinthians", 13},
	{"Galatians", 6},
	{"Ephesians", 6},
	{"Philippians", 4},
	{"Colossians", 4},
	{"1 Thessalonians", 5},
	{"2 Thessalonians", 3},
	{"1 Timothy", 6},
	{"2 Timothy", 4},
	{"Titus", 3},
	{"Philemon", 1},
	{"Hebrews", 13},
	{"James", 5},
	{"1 Peter", 5},
	{"2 Peter", 3},
	{"1 John", 5},
	{"2 John", 1},
	{"3 John", 1},
	{"Jude", 1},
	{"Revelation", 22},
}

// firstNT is the index of Matthew.
const firstNT = 39

var (
	Genesis             = Book{0}
	Exodus              = Book{1}
	Leviticus           = Book{2}
	Numbers             = Book{3}
	Deuteronomy         = Book{4}
	Joshua              = Book{5}
	Judges              = Book{6}
	Ruth                = Book{7}
	FirstSamuel         = Book{8}
	SecondSamuel        = Book{9}
	FirstKings          = Book{10}
	SecondKings         = Book{11}
	FirstChronicles     = Book{12}
	SecondChronicles    = Book{13}
	Ezra                = Book{14}
	Nehemiah            = Book{15}
	Esther              = Book{16}
	Job                 = Book{17}
	Psalms              = Book{18}
	Proverbs            = Book{19}
	Ecclesiastes        = Book{20}
	SongOfSolomon       = Book{21}
	Isaiah              = Book{22}
	Jeremiah            = Book{23}
	Lamentations        = Book{24}
	Ezekiel             = Book{25}
	Daniel              = Book{26}
	Hosea               = Book{27}
	Joel                = Book{28}
	Amos                = Book{29}
	Obadiah             = Book{30}
	Jonah               = Book{31}
	Micah               = Book{32}
	Nahum               = Book{33}
	Habakkuk            = Book{34}
	Zephaniah           = Book{35}
	Haggai              = Book{36}
	Zechariah           = Book{37}
	Malachi             = Book{38}
	Matthew             = Book{39}
	Mark                = Book{40}
	Luke                = Book{41}
	John                = Book{42}
	Acts                = Book{43}
	Romans              = Book{44}
	FirstCorinthians    = Book{45}
	SecondCorinthians   = Book{46}
	Galatians           = Book{47}
	Ephesians           = Book{48}
	Philippians         = Book{49}
	Colossians          = Book{50}
	FirstThessalonians  = Book{51}
	SecondThessalonians = Book{52}
	FirstTimothy        = Book{53}
	SecondTimothy       = Book{54}
	Titus               = Book{55}
	Philemon            = Book{56}
	Hebrews             = Book{57}
	James               = Book{58}
	FirstPeter          = Book{59}
	SecondPeter         = Book{60}
	FirstJohn           = Book{61}
	SecondJohn          = Book{62}
	ThirdJohn           = Book{63}
	Jude                = Book{64}
	Revelation          = Book{65}
)

// Books returns all books in canonical order.
func Books() []Book {
	out := make([]Book, Count)
	for i := range out {
		out[i] = Book{uint8(i)}
	}
	return out
}

// ByRank returns the book with the given 1-based rank.
func ByRank(rank int) (Book, bool) {
	if rank < 1 || rank > Count {
		return Book{}, false
	}
	return Book{uint8(rank - 1)}, true
}

// Rank is the 1-based canonical position, which is also the book id used by
// the text stores.
func (b Book) Rank() int { return int(b.idx) + 1 }

// Name returns the display name, e.g. "1 Samuel".
func (b Book) Name() string { return catalog[b.idx].name }

// MaxChapter returns the number of chapters in the book.
func (b Book) MaxChapter() int { return catalog[b.idx].chapters }

// HasChapter reports whether n is a valid chapter number for the book.
func (b Book) HasChapter(n int) bool { return n >= 1 && n <= b.MaxChapter() }

func (b Book) Testament() Testament {
	if b.idx >= firstNT {
		return NewTestament
	}
	return OldTestament
}

func (b Book) String() string { return b.Name() }
