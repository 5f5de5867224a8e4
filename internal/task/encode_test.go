package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twiced-technology-gmbh/todolist/internal/date"
)

func datePtr(year int, month time.Month, day int) *date.Date {
	d := date.New(year, month, day)
	return &d
}

func TestEncode(t *testing.T) {
	due := datePtr(2026, time.October, 10)

	tests := []struct {
		name     string
		title    string
		desc     string
		due      *date.Date
		category Category
		want     string
	}{
		{"general bare", "Comprar pan", "", nil, General, "📝 Comprar pan"},
		{"general full", "Comprar pan", "integral", due, General, "📝 Comprar pan : integral (Vence: 10/10/2026)"},
		{"today with date", "Llamar", "", due, Today, "📅 [HOY] Llamar (Vence: 10/10/2026)"},
		{"important upper-cases", "Tarea 1", "revisar informe", nil, Important, "★ [URGENTE] TAREA 1 : REVISAR INFORME"},
		{"important keeps date label", "Tarea 1", "", due, Important, "★ [URGENTE] TAREA 1 (Vence: 10/10/2026)"},
		{"unknown category is general", "x", "", nil, Category("other"), "📝 x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Encode(tt.title, tt.desc, tt.due, tt.category))
		})
	}
}

func TestCanonicalName_InvertsEncode(t *testing.T) {
	titles := []string{"Comprar pan", "  espacios  ", "ñandú", "📝 icono", "★ [URGENTE] falso", "a:b", "(Vence)", "vence: lunes"}
	descs := []string{"", "con descripción", "x : y", "fin (Vence)"}
	dues := []*date.Date{nil, datePtr(2027, time.March, 4)}

	for _, title := range titles {
		require.NoError(t, ValidateTitle(title), title)
		for _, desc := range descs {
			require.NoError(t, ValidateDescription(desc), desc)
			for _, due := range dues {
				for _, cat := range Categories() {
					encoded := Encode(title, desc, due, cat)
					assert.Equal(t, Identity(title), CanonicalName(encoded), encoded)
				}
			}
		}
	}
}

func TestCanonicalName_LabelInTitleIsRejected(t *testing.T) {
	// Encoded as Important these would lose everything after the label.
	for _, title := range []string{"informe (vence: lunes", "informe (Vence: lunes"} {
		require.Error(t, ValidateTitle(title), title)
		encoded := Encode(title, "", nil, Important)
		assert.NotEqual(t, Identity(title), CanonicalName(encoded), encoded)
	}
}

func TestCanonicalName_LegacyUpperCasedLabel(t *testing.T) {
	assert.Equal(t, "TAREA 1", CanonicalName("★ [URGENTE] TAREA 1 (VENCE: 10/10/2025)"))
}

func TestRank(t *testing.T) {
	assert.Equal(t, 1, Rank(Encode("a", "", nil, Important)))
	assert.Equal(t, 2, Rank(Encode("a", "", nil, Today)))
	assert.Equal(t, 3, Rank(Encode("a", "", nil, General)))
	assert.Equal(t, UnrankedRank, Rank("plain text"))
	assert.Equal(t, UnrankedRank, Rank(Completed(Encode("a", "", nil, Important))))
}

func TestCategoryOf(t *testing.T) {
	for _, cat := range Categories() {
		assert.Equal(t, cat, CategoryOf(Encode("a", "b", nil, cat)))
	}
	assert.Equal(t, General, CategoryOf("no marker"))
}

func TestDueDate(t *testing.T) {
	assert.Equal(t, date.New(2026, time.January, 1), DueDate("📅 [HOY] x (Vence: 01/01/2026)"))
	assert.Equal(t, date.New(2026, time.January, 1), DueDate("★ [URGENTE] X (VENCE: 01/01/2026)"))
	assert.Equal(t, date.Max, DueDate("📝 sin fecha"))
	assert.Equal(t, date.Max, DueDate("📝 rota (Vence: 99/99/2026)"))
	assert.Equal(t, date.Max, DueDate("📝 abierta (Vence: 01/01/2026"))
}

func TestDueDate_MatchesEncodedDate(t *testing.T) {
	due := datePtr(2026, time.May, 5)
	for _, cat := range Categories() {
		assert.Equal(t, *due, DueDate(Encode("t", "d", due, cat)))
	}
}

func TestCompleted(t *testing.T) {
	assert.Equal(t, "✔ 📝 x", Completed("📝 x"))
}

func TestDueDate_DescriptionMentioningDate(t *testing.T) {
	encoded := Encode("informe", "antes (Vence: 01/01/2020)", datePtr(2027, time.June, 30), Today)
	assert.Equal(t, date.New(2027, time.June, 30), DueDate(encoded))
	assert.Equal(t, "INFORME", CanonicalName(encoded))
}
