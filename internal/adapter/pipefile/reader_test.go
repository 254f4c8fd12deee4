package pipefile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		want     string
		encoding string
	}{
		{name: "utf-8", raw: []byte("Store_Name\nCafé"), want: "Store_Name\nCafé", encoding: "utf-8"},
		{name: "utf-8 with bom", raw: append([]byte{0xEF, 0xBB, 0xBF}, "Store_ID"...), want: "Store_ID", encoding: "utf-8"},
		{name: "windows-1252", raw: []byte{'J', 'e', 'r', 's', 'e', 'y', ' ', 'M', 'i', 'k', 'e', 0x92, 's'}, want: "Jersey Mike’s", encoding: "windows-1252"},
		{name: "latin-1 letter", raw: []byte{'C', 'a', 'f', 0xE9}, want: "Café", encoding: "windows-1252"},
		{name: "bytes undefined in windows-1252", raw: []byte{'a', 0x81, 0x8D}, want: "a\u0081\u008d", encoding: "iso-8859-1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, enc, err := Decode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.encoding, enc)
		})
	}
}

func TestParse(t *testing.T) {
	text := " Store_ID | Employee_ID |Start|End \n" +
		"1|10|2024-01-08 09:00:00|2024-01-08 17:00:00\n" +
		"\n" +
		"1|11|short row\n" +
		"1|12|a|b|extra\n" +
		"2 | 20 |2024-01-09 10:00|2024-01-09 12:30\n"

	table, err := Parse(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Store_ID", "Employee_ID", "Start", "End"}, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"1", "11", "short row", ""}, table.Rows[1])
	assert.Equal(t, []string{"2", "20", "2024-01-09 10:00", "2024-01-09 12:30"}, table.Rows[2])
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("")
	assert.Error(t, err)
}

func TestTable_Require(t *testing.T) {
	table, err := Parse("Store_ID|Store_Name\n1|Main\n")
	require.NoError(t, err)

	idx, err := table.Require("Store_Name", "Store_ID")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, idx)

	_, err = table.Require("Store_ID", "Store_Number")
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.ErrorContains(t, err, "Store_Number")
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 1, 8, 9, 5, 0, 0, time.Local)
	for _, s := range []string{
		"2024-01-08 09:05:00",
		"2024-01-08 09:05",
		"2024-01-08T09:05:00",
		"2024-01-08 09:05:00.000",
		"01/08/2024 09:05:00",
		"1/8/2024 9:05 AM",
		"1/8/2024 9:05:00 AM",
	} {
		t.Run(s, func(t *testing.T) {
			got, ok := ParseTime(s)
			require.True(t, ok)
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}

	utc, ok := ParseTime("2024-01-08T09:05:00Z")
	require.True(t, ok)
	assert.Equal(t, time.Local, utc.Location())
	assert.True(t, utc.Equal(time.Date(2024, 1, 8, 9, 5, 0, 0, time.UTC)))

	_, ok = ParseTime("")
	assert.False(t, ok)
	_, ok = ParseTime("yesterday")
	assert.False(t, ok)
}

func TestReadTimeEntries(t *testing.T) {
	in := "Store_ID|Employee_ID|Start|End|Notes\n" +
		"1|10|2024-01-08 09:00:00|2024-01-08 17:00:00|\n" +
		"1|11|2024-01-08 09:00:00||missed punch\n"

	entries, err := ReadTimeEntries(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "1", entries[0].StoreID)
	assert.Equal(t, "10", entries[0].EmployeeID)
	assert.True(t, entries[0].Valid)
	assert.Equal(t, 8*time.Hour, entries[0].End.Sub(entries[0].Start))
	assert.False(t, entries[1].Valid)
}

func TestReadTimeEntries_KeepsShortRows(t *testing.T) {
	in := "Store_ID|Employee_ID|Start|End|Notes\n" +
		"1|10|2024-01-08 09:00:00|2024-01-08 17:00:00|covered shift\n" +
		"1|11|2024-01-08 09:00:00|2024-01-08 17:00:00\n" +
		"1|12|2024-01-08 09:00:00\n"

	entries, err := ReadTimeEntries(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "11", entries[1].EmployeeID)
	assert.True(t, entries[1].Valid)
	assert.Equal(t, 8*time.Hour, entries[1].End.Sub(entries[1].Start))
	assert.False(t, entries[2].Valid, "missing End must not count")
}

func TestReadTimeEntries_MissingColumn(t *testing.T) {
	_, err := ReadTimeEntries(strings.NewReader("Store_ID|Employee_ID|Start\n1|2|2024-01-01\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestReadEmployeesAndStores(t *testing.T) {
	raw := []byte("Employee_ID|First_Name|Last_Name|Store_ID\n10|Ren")
	raw = append(raw, 0xE9)
	raw = append(raw, "e|Doe|1\n"...)

	employees, err := ReadEmployees(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Renée", employees[0].FirstName)
	assert.Equal(t, "1", employees[0].StoreID)

	stores, err := ReadStores(strings.NewReader("Store_ID|Store_Number|Store_Name\n1|5001|Downtown\n"))
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "5001", stores[0].StoreNumber)
	assert.Equal(t, "Downtown", stores[0].StoreName)
}
