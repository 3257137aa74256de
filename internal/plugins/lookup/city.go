package lookup

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"ggm/internal/plugin"
)

const cityInfo = "City data is from GeoNames' allCountries database at http://download.geonames.org/export/dump/.\n" +
	"Without flags ?city takes a space delimited list of city names, with multi-word names in double quotes, " +
	"and returns their ISO-3166 country code, population and time zone.\n" +
	"Flags named after database fields select which fields are shown: --latitude --longitude --feature-class " +
	"--feature-code --cc2 --admin1-code --admin2-code --admin3-code --admin4-code -p/--population " +
	"-e/--elevation -t/--timezone.\n" +
	"--country-code CODE narrows the search to one country."

// cityColumns are the selectable fields in display order of their flags.
var cityColumns = []struct {
	flag, short, column, label string
}{
	{"latitude", "", "latitude", "Latitude"},
	{"longitude", "", "longitude", "Longitude"},
	{"feature-class", "", "feature_class", "Feature Class"},
	{"feature-code", "", "feature_code", "Feature Code"},
	{"cc2", "", "cc2", "Cc2"},
	{"admin1-code", "", "admin1_code", "Admin1 Code"},
	{"admin2-code", "", "admin2_code", "Admin2 Code"},
	{"admin3-code", "", "admin3_code", "Admin3 Code"},
	{"admin4-code", "", "admin4_code", "Admin4 Code"},
	{"population", "p", "population", "Population"},
	{"elevation", "e", "elevation", "Elevation"},
	{"timezone", "t", "timezone", "Timezone"},
}

var defaultCityColumns = []string{"iso", "population", "timezone"}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type cityArgs struct {
	country string
	fields  map[string]*bool
}

func cityFlags(a *cityArgs) *pflag.FlagSet {
	fs := plugin.NewFlagSet("city")
	a.fields = make(map[string]*bool, len(cityColumns))
	for _, c := range cityColumns {
		a.fields[c.column] = fs.BoolP(c.flag, c.short, false, c.label)
	}
	fs.StringVar(&a.country, "country-code", "", "ISO-3166 country code")
	return fs
}

// columns returns the selected columns, sorted, or the defaults.
func (a *cityArgs) columns() []string {
	var cols []string
	for col, on := range a.fields {
		if *on {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return defaultCityColumns
	}
	sort.Strings(cols)
	return cols
}

// citiesDB is the GeoNames table, opened on first use.
type citiesDB struct {
	path  string
	table string
	limit int

	mu sync.Mutex
	db *sql.DB
}

func newCitiesDB(path, table string, limit int) (*citiesDB, error) {
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("cities_db_table %q is not a valid table name", table)
	}
	if limit < 1 {
		return nil, fmt.Errorf("cities_select_limit must be at least 1")
	}
	return &citiesDB{path: path, table: table, limit: limit}, nil
}

func (c *citiesDB) open() (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return c.db, nil
	}
	if c.path == "" {
		return nil, fmt.Errorf("cities_db is not configured")
	}
	db, err := sql.Open("sqlite", "file:"+c.path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	c.db = db
	return db, nil
}

func (c *citiesDB) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// query returns the most populous matches for name.
func (c *citiesDB) query(ctx context.Context, name, country string, cols []string) ([][]string, error) {
	db, err := c.open()
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf("SELECT %s FROM %s WHERE asciiname = ? AND population > 0", strings.Join(cols, ", "), c.table)
	args := []interface{}{name}
	if country != "" {
		q += " AND iso = ?"
		args = append(args, strings.ToUpper(country))
	}
	q += fmt.Sprintf(" ORDER BY population DESC LIMIT %d", c.limit)

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			row[i] = v.String
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (l *Lookup) city(ctx context.Context, args string) plugin.Reply {
	var a cityArgs
	fs := cityFlags(&a)
	operands, err := plugin.ParseArgs(fs, args, "CITY...")
	if err != nil {
		return plugin.Whisper(err.Error())
	}
	names := splitQuoted(strings.Join(operands, " "))
	if len(names) == 0 {
		return plugin.Whisper(plugin.Synopsis(fs, "CITY...") + " requires at least one city")
	}

	cols := a.columns()
	var replies []string
	long := false
	for _, name := range names {
		rows, err := l.cities.query(ctx, name, a.country, cols)
		if err != nil {
			l.logger.Error("city %q: %v", name, err)
			return plugin.Whisper("Cannot reach the cities database. Please contact bot maintainer.")
		}
		reply := formatCity(name, cols, rows)
		long = long || len(reply) > 80
		replies = append(replies, reply)
	}
	return plugin.Reply{Text: strings.Join(replies, "\n"), Private: long || len(replies) > 2}
}

func formatCity(name string, cols []string, rows [][]string) string {
	lines := []string{fmt.Sprintf("[About %s]:", name)}
	if len(rows) == 0 {
		lines = append(lines, "    No matching city")
	}
	for _, row := range rows {
		parts := make([]string, len(cols))
		for i, col := range cols {
			v := row[i]
			if col == "population" {
				v = groupThousands(v)
			}
			parts[i] = columnLabel(col) + ": " + v
		}
		lines = append(lines, "    "+strings.Join(parts, " | "))
	}
	return strings.Join(lines, "\n")
}

func columnLabel(col string) string {
	if col == "iso" {
		return "Country Code"
	}
	for _, c := range cityColumns {
		if c.column == col {
			return c.label
		}
	}
	return col
}

// groupThousands renders an integer string with comma separators.
func groupThousands(s string) string {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return s
	}
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// splitQuoted splits on whitespace, keeping double-quoted runs together.
func splitQuoted(s string) []string {
	var out []string
	var cur strings.Builder
	quoted := false
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
		case (r == ' ' || r == '\t') && !quoted:
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
		default:
			cur.WriteRune(r)
		}
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
