package f1data

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1stats-go/pkg/store"
)

// WriteTable writes rows to dir using the file name and header of table
func WriteTable(tb testing.TB, dir string, table store.Table, rows ...[]string) {
	tb.Helper()
	f, err := os.Create(filepath.Join(dir, table.FileName()))
	require.NoError(tb, err)
	defer f.Close()
	w := csv.NewWriter(f)
	require.NoError(tb, w.Write(table.Columns()))
	require.NoError(tb, w.WriteAll(rows))
}

// WriteMinimalDir writes the two race example with position markers as
// found in the public dataset
func WriteMinimalDir(tb testing.TB) string {
	tb.Helper()
	dir := tb.TempDir()
	WriteTable(tb, dir, store.TableRaces,
		[]string{"1", "2023", "1", "1", "Bahrain Grand Prix", "2023-03-05"},
		[]string{"2", "2023", "2", "2", "Saudi Arabian Grand Prix", "2023-03-19"})
	WriteTable(tb, dir, store.TableDrivers,
		[]string{"10", "Max", "Verstappen", "Dutch"},
		[]string{"11", "Sergio", "Pérez", "Mexican"})
	WriteTable(tb, dir, store.TableConstructors,
		[]string{"9", "Red Bull"})
	WriteTable(tb, dir, store.TableCircuits,
		[]string{"1", "Bahrain International Circuit", "Sakhir", "Bahrain", "26.0325", "50.5106"},
		[]string{"2", "Jeddah Corniche Circuit", "Jeddah", "Saudi Arabia", "21.6319", "39.1044"})
	WriteTable(tb, dir, store.TableResults,
		[]string{"1", "1", "10", "9", "1", "1", "1", "25", "57", "1"},
		[]string{"2", "1", "11", "9", "2", "2", "2", "18", "57", "1"},
		[]string{"3", "2", "10", "9", "15", "2", "2", "18", "50", "1"},
		[]string{"4", "2", "11", "9", "1", `\N`, "20", "0", "10", "5"})
	WriteTable(tb, dir, store.TableDriverStandings,
		[]string{"1", "1", "10", "25", "1", "1"},
		[]string{"2", "1", "11", "18", "2", "0"},
		[]string{"3", "2", "10", "43", "1", "1"},
		[]string{"4", "2", "11", "18", "2", "0"})
	return dir
}
