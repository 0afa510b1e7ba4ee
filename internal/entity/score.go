package entity

// MaxRawCount is the number of questions in one TOEIC section.
const MaxRawCount = 100

// LastListeningPart is the highest part number that belongs to the Listening section.
const LastListeningPart = 4

// Section identifies one of the two scored halves of the exam.
type Section string

const (
	SectionListening Section = "listening"
	SectionReading   Section = "reading"
)

// SectionForPart maps a part number (1..7) to its section.
func SectionForPart(partNumber int) Section {
	if partNumber <= LastListeningPart {
		return SectionListening
	}
	return SectionReading
}

// RawScore holds the per-section correct counts of one graded attempt.
type RawScore struct {
	ListeningCorrect int
	ReadingCorrect   int
}

// ScaledScore is the standardized score derived from a RawScore.
type ScaledScore struct {
	Listening int
	Reading   int
	Total     int
}

// ScoreConversion is one row of a stored conversion table.
type ScoreConversion struct {
	Section Section
	Raw     int
	Scaled  int
}
