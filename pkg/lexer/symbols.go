package lexer

// Symbol is the id of an interned identifier spelling.
type Symbol int

// SymbolTable interns identifier spellings into sequential ids. Each scan
// owns its own table; nothing is shared between scans.
type SymbolTable struct {
	ids   map[string]Symbol
	names []string
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{ids: make(map[string]Symbol)}
}

// Intern returns the id of name, assigning the next sequential id on
// first sight. Lookup is case-sensitive.
func (t *SymbolTable) Intern(name string) Symbol {
	if sym, ok := t.ids[name]; ok {
		return sym
	}
	sym := Symbol(len(t.names))
	t.ids[name] = sym
	t.names = append(t.names, name)
	return sym
}

// Len reports how many distinct spellings have been interned.
func (t *SymbolTable) Len() int {
	return len(t.names)
}

// Table finalizes the table, yielding spellings ordered by id.
func (t *SymbolTable) Table() []string {
	return t.names
}
