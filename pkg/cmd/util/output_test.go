package util

import (
	"bytes"
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name   string        `json:"name"`
	Points float64       `json:"points"`
	Pos    null.Val[int] `json:"position"`
	Years  []int         `json:"years"`
}

func TestPrintJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Print(buf, OutputJSON, sample{Name: "Alain Prost", Points: 12.5, Years: []int{1985}}))
	assert.JSONEq(t, `{"name":"Alain Prost","points":12.5,"position":null,"years":[1985]}`, buf.String())
}

func TestPrintYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Print(buf, OutputYAML,
		sample{Name: "Alain Prost", Pos: null.From(1), Years: []int{1985, 1986}}))
	want := `name: Alain Prost
points: 0
position: 1
years:
  - 1985
  - 1986
`
	assert.Equal(t, want, buf.String())
}

func TestPrintUnknownFormat(t *testing.T) {
	assert.Error(t, Print(&bytes.Buffer{}, "xml", 1))
}
