package factor

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/bfix/primpoly/bigint"
	gerr "github.com/bfix/primpoly/errors"
)

// headerRE matches the line that ends a table file's comment preamble and
// introduces the "n #Fac Factorisation" data columns.
var headerRE = regexp.MustCompile(`^\s*n\s*#Fac\s+Factorisation`)

// FactorTable holds the entries of one loaded Cunningham-style factor
// table, keyed by exponent n: line i documents the factorization of
// base^n - 1 (or base^n + 1, depending on which file it came from).
type FactorTable struct {
	entries map[int]*Factorization
}

// LoadFactorTable reads a single table file. Lines before the header line
// matching headerRE are a free-form comment preamble and are skipped.
// Data lines may continue onto the next physical line when they end in
// '\' or '.'; lines whose factorization is marked incomplete with a
// trailing '+' are skipped, since this module only trusts complete,
// verified factorizations.
func LoadFactorTable(path string) (*FactorTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gerr.New(gerr.ErrIO, "open %s: %v", path, err)
	}
	defer f.Close()

	t := &FactorTable{entries: map[int]*Factorization{}}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	sawHeader := false
	var pending strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if !sawHeader {
			if headerRE.MatchString(line) {
				sawHeader = true
			}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		pending.WriteString(line)
		joined := pending.String()
		trimmed := strings.TrimRight(joined, " \t")
		// A trailing '.' is always a continuation, never a terminator: '.'
		// only ever appears in this format as the separator between factor
		// tokens, so a logical entry never legitimately ends on one. The
		// joined-then-refielded parse in parseLine discards the seam either
		// way, so no separator needs to be inserted here. A trailing '\' is
		// dropped before the next physical line is appended.
		if strings.HasSuffix(trimmed, "\\") {
			pending.Reset()
			pending.WriteString(strings.TrimSuffix(trimmed, "\\"))
			continue
		}
		if strings.HasSuffix(trimmed, ".") {
			continue
		}
		pending.Reset()
		if err := t.parseLine(joined); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, gerr.New(gerr.ErrIO, "read %s: %v", path, err)
	}
	if pending.Len() > 0 {
		if err := t.parseLine(pending.String()); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parseLine parses one joined (continuation-resolved) data line of the
// form "n  k  p1^e1.p2.p3^e3..." optionally suffixed with "+" to mark an
// incomplete (not fully factored) entry, which is skipped.
func (t *FactorTable) parseLine(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if strings.HasSuffix(line, "+") {
		return nil
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return gerr.New(gerr.ErrIO, "bad exponent field %q", fields[0])
	}
	factorsField := strings.Join(fields[2:], "")
	pfs, err := parseFactorList(factorsField)
	if err != nil {
		return err
	}
	fz := NewFactorization(pfs)

	for _, pf := range fz.Factors() {
		ok, err := IsAlmostSurelyPrime(pf.Prime)
		if err != nil {
			return err
		}
		if !ok {
			return gerr.New(gerr.ErrFactorization, "table entry n=%d: %s is not prime", n, pf.Prime.String())
		}
	}
	t.entries[n] = fz
	return nil
}

// parseFactorList parses "p1^e1.p2.p3^e3" into PrimeFactors.
func parseFactorList(s string) ([]PrimeFactor, error) {
	var out []PrimeFactor
	for _, tok := range strings.Split(s, ".") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		parts := strings.SplitN(tok, "^", 2)
		p, err := bigint.Parse(parts[0])
		if err != nil {
			return nil, gerr.New(gerr.ErrFactorization, "bad prime token %q", tok)
		}
		mult := 1
		if len(parts) == 2 {
			mult, err = strconv.Atoi(parts[1])
			if err != nil {
				return nil, gerr.New(gerr.ErrFactorization, "bad exponent token %q", tok)
			}
		}
		out = append(out, PrimeFactor{Prime: p, Mult: mult})
	}
	return out, nil
}

// Lookup returns the factorization of exponent n recorded in this table,
// and whether it was found.
func (t *FactorTable) Lookup(n int) (*Factorization, bool) {
	fz, ok := t.entries[n]
	return fz, ok
}

// FindFactorTables recursively searches root for files that parse as
// factor tables, returning one merged table indexed by n. Files that fail
// to parse (not a table at all) are skipped rather than erroring the whole
// search, since the search directory may hold unrelated files.
func FindFactorTables(root string) (*FactorTable, error) {
	merged := &FactorTable{entries: map[int]*Factorization{}}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		tbl, lerr := LoadFactorTable(path)
		if lerr != nil {
			return nil
		}
		for n, fz := range tbl.entries {
			merged.entries[n] = fz
		}
		return nil
	})
	if err != nil {
		return nil, gerr.New(gerr.ErrIO, "walk %s: %v", root, err)
	}
	return merged, nil
}

// FactorTableLookup verifies n's factorization against the candidate value
// it should equal (base^exp ± 1, supplied by the caller as target). A
// missing entry is a plain miss (ok=false, err=nil): the caller falls back
// to another factorization method. A present entry whose recorded factors'
// product does not equal target means the table itself is wrong for this
// entry, which is reported as ErrFactorization rather than silently
// degrading to a miss.
func (t *FactorTable) FactorTableLookup(exp int, target *bigint.BigInt) (*Factorization, bool, error) {
	fz, ok := t.Lookup(exp)
	if !ok {
		return nil, false, nil
	}
	if !fz.Product().Equals(target) {
		return nil, false, gerr.New(gerr.ErrFactorization, "factor table entry n=%d: recorded factors' product %s != %s", exp, fz.Product().String(), target.String())
	}
	return fz, true, nil
}
