package tsplib_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/renormtsp/tsp"
	"github.com/katalvlaran/renormtsp/tsplib"
)

const square = `NAME : square4
COMMENT : unit square
COMMENT : second line
TYPE : TSP
DIMENSION : 4
EDGE_WEIGHT_TYPE : EUC_2D
NODE_COORD_SECTION
1 0 0
2 1 0
4 1 1
3 0 1
EOF
`

// TestParse_Square reads ids out of order into 0-based slots.
func TestParse_Square(t *testing.T) {
	inst, err := tsplib.Parse(strings.NewReader(square))
	require.NoError(t, err)
	require.Equal(t, "square4", inst.Name)
	require.Equal(t, "unit square\nsecond line", inst.Comment)
	require.Equal(t, []tsp.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, inst.Points)
}

// TestParse_KeywordAfterSection ends the coordinate section at a keyword.
func TestParse_KeywordAfterSection(t *testing.T) {
	in := "DIMENSION: 2\nNODE_COORD_SECTION\n1 0.5 1e3\n2 -2 3\nDISPLAY_DATA_TYPE : COORD_DISPLAY\n"
	inst, err := tsplib.Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []tsp.Point{{0.5, 1000}, {-2, 3}}, inst.Points)
}

// TestParse_Errors covers malformed and unsupported inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"atsp", "TYPE : ATSP\n", tsplib.ErrUnsupported},
		{"geo", "EDGE_WEIGHT_TYPE : GEO\n", tsplib.ErrUnsupported},
		{"bad dimension", "DIMENSION : x\n", tsplib.ErrSyntax},
		{"section first", "NODE_COORD_SECTION\n1 0 0\n", tsplib.ErrSyntax},
		{"no section", "NAME : a\nDIMENSION : 1\nEOF\n", tsplib.ErrMissingSection},
		{"short line", "DIMENSION : 1\nNODE_COORD_SECTION\n1 0\n", tsplib.ErrSyntax},
		{"bad coord", "DIMENSION : 1\nNODE_COORD_SECTION\n1 a 0\n", tsplib.ErrSyntax},
		{"id range", "DIMENSION : 1\nNODE_COORD_SECTION\n2 0 0\n", tsplib.ErrDimension},
		{"duplicate", "DIMENSION : 2\nNODE_COORD_SECTION\n1 0 0\n1 1 1\n", tsplib.ErrDimension},
		{"missing node", "DIMENSION : 2\nNODE_COORD_SECTION\n1 0 0\nEOF\n", tsplib.ErrDimension},
		{"huge dimension", "DIMENSION : 999999999999999\nNODE_COORD_SECTION\n1 0 0\nEOF\n", tsplib.ErrDimension},
		{"huge id", "DIMENSION : 999999999999999\nNODE_COORD_SECTION\n999999999999998 0 0\nEOF\n", tsplib.ErrDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestWriteProblem_RoundTrip writes and re-reads an instance.
func TestWriteProblem_RoundTrip(t *testing.T) {
	in := &tsplib.Instance{Name: "tri", Comment: "a\nb", Points: []tsp.Point{{0, 0}, {2.5, 1}, {-1, 1e-3}}}
	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteProblem(&buf, in))
	out, err := tsplib.Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

// TestWriteTour emits 1-based ids and the terminator.
func TestWriteTour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tsplib.WriteTour(&buf, "square4", []int{0, 1, 3, 2}, 4))
	require.Equal(t, "NAME : square4\nCOMMENT : length 4.000000\nTYPE : TOUR\nDIMENSION : 4\nTOUR_SECTION\n1\n2\n4\n3\n-1\nEOF\n", buf.String())

	tour, err := tsplib.ParseTour(&buf)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2}, tour)

	require.ErrorIs(t, tsplib.WriteTour(&buf, "", []int{0, 0}, 0), tsp.ErrNotPermutation)
	require.ErrorIs(t, tsplib.WriteTour(&buf, "", nil, 0), tsp.ErrEmptyTour)
}

// TestParseTour_Errors rejects unterminated and invalid tours.
func TestParseTour_Errors(t *testing.T) {
	_, err := tsplib.ParseTour(strings.NewReader("TOUR_SECTION\n1\n2\n"))
	require.ErrorIs(t, err, tsplib.ErrSyntax)

	_, err = tsplib.ParseTour(strings.NewReader("TOUR_SECTION\n1 x\n"))
	require.ErrorIs(t, err, tsplib.ErrSyntax)

	_, err = tsplib.ParseTour(strings.NewReader("TOUR_SECTION\n1 3 -1\n"))
	require.ErrorIs(t, err, tsp.ErrIndexOutOfRange)
}
