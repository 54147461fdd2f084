package adapters

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"contract-mapper/internal/contract"
	"contract-mapper/internal/ports"
)

// DefaultSampleRows bounds how many data rows the generator inspects.
const DefaultSampleRows = 1000

var (
	emailRe      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nonIdentRe   = regexp.MustCompile(`[^a-z0-9]+`)
	dateLayouts  = []string{"2006-01-02", "02/01/2006", "01/02/2006"}
	timeLayouts  = []string{time.RFC3339, time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"}
	boolLiterals = map[string]struct{}{"true": {}, "false": {}, "yes": {}, "no": {}}
)

// CSVContractGenerator infers a single-model contract from a CSV sample.
type CSVContractGenerator struct {
	SampleRows int
}

// NewCSVContractGenerator constructs a generator with the default sample size.
func NewCSVContractGenerator() *CSVContractGenerator {
	return &CSVContractGenerator{SampleRows: DefaultSampleRows}
}

// column accumulates what the sampled values of one column have in common.
type column struct {
	header  string
	name    string
	seen    int
	empty   int
	integer int
	number  int
	boolean int
	date    int
	stamp   int
	email   int
}

func (c *column) observe(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		c.empty++

		return
	}

	c.seen++

	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		c.integer++
	}

	if _, err := strconv.ParseFloat(v, 64); err == nil {
		c.number++
	}

	if _, ok := boolLiterals[strings.ToLower(v)]; ok {
		c.boolean++
	}

	if parsesAny(dateLayouts, v) {
		c.date++
	}

	if parsesAny(timeLayouts, v) {
		c.stamp++
	}

	if emailRe.MatchString(v) {
		c.email++
	}
}

func (c *column) field() contract.Field {
	f := contract.Field{
		Name:     c.name,
		Type:     contract.TypeString,
		Required: c.seen > 0 && c.empty == 0,
	}

	if c.header != c.name {
		f.Description = c.header
	}

	if c.seen == 0 {
		return f
	}

	switch c.seen {
	case c.integer:
		f.Type = contract.TypeInteger
	case c.number:
		f.Type = contract.TypeNumber
	case c.boolean:
		f.Type = contract.TypeBoolean
	case c.date:
		f.Type = contract.TypeDate
	case c.stamp:
		f.Type = contract.TypeTimestamp
	case c.email:
		f.Format = "email"
		f.PII = true
	}

	return f
}

// Generate reads a header row and up to SampleRows data rows, then infers a
// contract whose id is derived from name.
func (g *CSVContractGenerator) Generate(ctx context.Context, name string, r io.Reader) (*contract.Contract, error) {
	id := NormalizeIdentifier(name)
	if id == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("contract name is required")
	}

	decoded := transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder()))

	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, csvInvalid("empty file: no header row found", nil)
		}

		return nil, csvInvalid("failed to read header row", err)
	}

	cols, err := newColumns(headers)
	if err != nil {
		return nil, err
	}

	limit := g.SampleRows
	if limit <= 0 {
		limit = DefaultSampleRows
	}

	rows, skipped := 0, 0

	for rows < limit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			skipped++

			continue
		}

		rows++

		for i, c := range cols {
			if i < len(record) {
				c.observe(record[i])
			} else {
				c.observe("")
			}
		}
	}

	if rows == 0 {
		return nil, csvInvalid("file contains no data rows", nil)
	}

	fields := make([]contract.Field, 0, len(cols))
	for _, c := range cols {
		fields = append(fields, c.field())
	}

	c := &contract.Contract{
		ID:          id,
		Title:       strings.TrimSpace(name),
		Version:     "0.1.0",
		Description: fmt.Sprintf("Inferred from %d sampled rows", rows),
		Models:      []contract.Model{{Name: id, Fields: fields}},
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	log.Ctx(ctx).Debug().
		Str("contract", id).
		Int("rows", rows).
		Int("skipped", skipped).
		Int("fields", len(fields)).
		Msg("contract inferred from csv")

	return c, nil
}

func newColumns(headers []string) ([]*column, error) {
	cols := make([]*column, 0, len(headers))
	used := make(map[string]bool, len(headers))

	for i, h := range headers {
		h = strings.TrimSpace(h)

		base := NormalizeIdentifier(h)
		if base == "" {
			base = fmt.Sprintf("column_%d", i+1)
		}

		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", base, n)
		}

		used[name] = true

		cols = append(cols, &column{header: h, name: name})
	}

	if len(cols) == 0 {
		return nil, csvInvalid("header row has no columns", nil)
	}

	return cols, nil
}

// NormalizeIdentifier folds s to lower snake_case ASCII: diacritics are
// stripped and every run of other characters becomes one underscore.
func NormalizeIdentifier(s string) string {
	s = strings.ToLower(strings.TrimSpace(stripDiacritics(s)))
	s = nonIdentRe.ReplaceAllString(s, "_")

	return strings.Trim(s, "_")
}

func stripDiacritics(s string) string {
	var b strings.Builder

	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

func parsesAny(layouts []string, v string) bool {
	for _, layout := range layouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}

	return false
}

func csvInvalid(msg string, cause error) error {
	if cause == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(msg)
	}

	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg).
		WithCause(cause)
}

var _ ports.ContractGenerator = (*CSVContractGenerator)(nil)
