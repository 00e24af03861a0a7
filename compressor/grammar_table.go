package compressor

import (
	"sort"

	"github.com/nihei9-lab/lrtab/grammar"
)

// encodedEmpty is the sentinel entry value for "no action"/"no goto" in
// the tables built here; it matches RowDisplacementTable's EmptyValue
// convention and is distinct from every value the encodings below ever
// produce (both are always non-negative).
const encodedEmpty = -1

// CompactTable is a grammar.Table re-encoded through two row-displaced
// matrices (compressor.RowDisplacementTable), one for the action table
// and one for the goto table. It is the representation `lrtab compile
// --compact` emits: the same information as grammar.Table, laid out for
// the sparse-matrix storage the teacher's compressor package already
// implements, rather than a dense map per state.
type CompactTable struct {
	TerminalKeys    []string
	NonTerminalKeys []string
	Action          *RowDisplacementTable
	Goto            *RowDisplacementTable
	Rules           []*grammar.Rule
}

// Compact builds a CompactTable from t. The terminal and non-terminal
// key universes are every key that appears in any row, sorted for
// determinism (spec.md §6.4).
func Compact(t *grammar.Table) (*CompactTable, error) {
	termKeys := collectKeys(t, func(row *grammar.Row) []string {
		keys := make([]string, 0, len(row.Action))
		for k := range row.Action {
			keys = append(keys, k)
		}
		return keys
	})
	ntKeys := collectKeys(t, func(row *grammar.Row) []string {
		keys := make([]string, 0, len(row.Goto))
		for k := range row.Goto {
			keys = append(keys, k)
		}
		return keys
	})

	actionEntries := make([]int, len(t.Rows)*len(termKeys))
	for i := range actionEntries {
		actionEntries[i] = encodedEmpty
	}
	for r, row := range t.Rows {
		for c, key := range termKeys {
			e, ok := row.Action[key]
			if !ok {
				continue
			}
			actionEntries[r*len(termKeys)+c] = encodeAction(e)
		}
	}

	gotoEntries := make([]int, len(t.Rows)*len(ntKeys))
	for i := range gotoEntries {
		gotoEntries[i] = encodedEmpty
	}
	for r, row := range t.Rows {
		for c, key := range ntKeys {
			if dest, ok := row.Goto[key]; ok {
				gotoEntries[r*len(ntKeys)+c] = dest
			}
		}
	}

	actionTab := NewRowDisplacementTable(encodedEmpty)
	if len(termKeys) > 0 {
		orig, err := NewOriginalTable(actionEntries, len(termKeys))
		if err != nil {
			return nil, err
		}
		if err := actionTab.Compress(orig); err != nil {
			return nil, err
		}
	}

	gotoTab := NewRowDisplacementTable(encodedEmpty)
	if len(ntKeys) > 0 {
		orig, err := NewOriginalTable(gotoEntries, len(ntKeys))
		if err != nil {
			return nil, err
		}
		if err := gotoTab.Compress(orig); err != nil {
			return nil, err
		}
	}

	return &CompactTable{
		TerminalKeys:    termKeys,
		NonTerminalKeys: ntKeys,
		Action:          actionTab,
		Goto:            gotoTab,
		Rules:           t.Rules,
	}, nil
}

// LookupAction re-derives an ActionEntry for state row and key from the
// compact encoding, mirroring grammar.Row.Action[key]'s ok-idiom.
func (c *CompactTable) LookupAction(row int, key string) (grammar.ActionEntry, bool) {
	col := indexOf(c.TerminalKeys, key)
	if col < 0 {
		return grammar.ActionEntry{}, false
	}
	v, err := c.Action.Lookup(row, col)
	if err != nil || v == encodedEmpty {
		return grammar.ActionEntry{}, false
	}
	return decodeAction(v), true
}

// LookupGoto is the goto-table analogue of LookupAction.
func (c *CompactTable) LookupGoto(row int, key string) (int, bool) {
	col := indexOf(c.NonTerminalKeys, key)
	if col < 0 {
		return 0, false
	}
	v, err := c.Goto.Lookup(row, col)
	if err != nil || v == encodedEmpty {
		return 0, false
	}
	return v, true
}

// encodeAction packs an ActionEntry's kind into its low bit so both
// Shift and Reduce entries fit the single-int-per-cell matrix the
// compressor operates on; Value is always non-negative, so the packed
// form is too.
func encodeAction(e grammar.ActionEntry) int {
	v := e.Value << 1
	if e.Kind == grammar.Reduce {
		v |= 1
	}
	return v
}

func decodeAction(v int) grammar.ActionEntry {
	kind := grammar.Shift
	if v&1 == 1 {
		kind = grammar.Reduce
	}
	return grammar.ActionEntry{Kind: kind, Value: v >> 1}
}

func collectKeys(t *grammar.Table, keysOf func(*grammar.Row) []string) []string {
	seen := map[string]bool{}
	for _, row := range t.Rows {
		for _, k := range keysOf(row) {
			seen[k] = true
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func indexOf(keys []string, key string) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}
