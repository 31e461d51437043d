package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reconcilarr/reconcilarr/overseerr"
)

func sampleRequest() overseerr.Request {
	return overseerr.Request{
		ID:          42,
		MediaType:   overseerr.MediaTypeMovie,
		Title:       "Star Trek",
		TmdbID:      100,
		Status:      overseerr.RequestStatusApproved,
		RequestedBy: "Alice",
		CreatedAt:   "2024-06-01T12:00:00.000Z",
	}
}

func TestCompileRejectsEmptyExpression(t *testing.T) {
	_, err := Compile("   ")
	require.Error(t, err)

	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "empty expression", cerr.Reason)
}

func TestCompileRejectsInvalidSyntax(t *testing.T) {
	_, err := Compile("Title ==")
	require.Error(t, err)

	var cerr *CompilationError
	require.ErrorAs(t, err, &cerr)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{"title match", `Title == "Star Trek"`, true},
		{"case insensitive contains", `contains(Title, "STAR")`, true},
		{"requester match", `requestedBy("alice")`, true},
		{"requester mismatch", `requestedBy("bob")`, false},
		{"media kind", `isMovie()`, true},
		{"not a series", `isSeries()`, false},
		{"status", `Status == "APPROVED"`, true},
		{"external id", `TmdbID == 100`, true},
		{"requested after old date", `requestedAfter(parseDate("2024-01-01"))`, true},
		{"requested before old date", `requestedBefore(parseDate("2024-01-01"))`, false},
		{"compound", `isMovie() and startsWith(Title, "star")`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Evaluate(sampleRequest()))
		})
	}
}

func TestSeriesWithoutTVDBID(t *testing.T) {
	req := overseerr.Request{
		ID:        7,
		MediaType: overseerr.MediaTypeTV,
		Title:     "Orphan Show",
	}

	f, err := Compile(`isSeries() and not hasTVDBID()`)
	require.NoError(t, err)
	assert.True(t, f.Evaluate(req))
}

func TestFuncAdapter(t *testing.T) {
	f, err := Compile(`isMovie()`)
	require.NoError(t, err)

	pred := f.Func()
	assert.True(t, pred(sampleRequest()))
	assert.Equal(t, "isMovie()", f.Expression())
}
