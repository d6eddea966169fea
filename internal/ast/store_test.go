package ast

import "testing"

func newFn(ids *IDAllocator, name string, origin Origin, body []Stmt) *Function {
	return &Function{
		base:   base{Meta: Metadata{NodeID: ids.Next()}},
		Name:   name,
		Body:   body,
		Origin: origin,
	}
}

func TestStoreRegisterOrdersTopLevelEntries(t *testing.T) {
	ids := NewIDAllocator()
	store := NewStore()

	a := newFn(ids, "a", OriginUser, nil)
	b := newFn(ids, "b", OriginStdlib, nil)
	c := newFn(ids, "c", OriginUser, nil)

	store.Register(a)
	store.Register(b)
	store.Register(c)
	store.Freeze()

	entries := store.GetProgramEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].EntryName() != "a" || entries[1].EntryName() != "b" || entries[2].EntryName() != "c" {
		t.Fatalf("entries out of registration order: %v", entries)
	}

	user := store.UserEntries()
	if len(user) != 2 {
		t.Fatalf("expected 2 user entries, got %d", len(user))
	}
	stdlib := store.StdlibEntries()
	if len(stdlib) != 1 || stdlib[0].EntryName() != "b" {
		t.Fatalf("expected stdlib entry 'b', got %v", stdlib)
	}
}

func TestStoreRegisterWalksNestedStatements(t *testing.T) {
	ids := NewIDAllocator()
	store := NewStore()

	letStmt := &LetStmt{base: base{Meta: Metadata{NodeID: ids.Next()}}, Name: "x"}
	innerReturn := &ReturnStmt{base: base{Meta: Metadata{NodeID: ids.Next()}}}
	whileStmt := &WhileStmt{
		base: base{Meta: Metadata{NodeID: ids.Next()}},
		Body: []Stmt{innerReturn},
	}

	fn := newFn(ids, "f", OriginUser, []Stmt{letStmt, whileStmt})
	store.Register(fn)
	store.Freeze()

	if _, ok := store.GetStmt(letStmt.NodeID()); !ok {
		t.Fatalf("expected top-level let statement to be registered")
	}
	if _, ok := store.GetStmt(whileStmt.NodeID()); !ok {
		t.Fatalf("expected while statement to be registered")
	}
	if _, ok := store.GetStmt(innerReturn.NodeID()); !ok {
		t.Fatalf("expected nested return statement inside while body to be registered")
	}
}

func TestStoreGetEntryAndFunctions(t *testing.T) {
	ids := NewIDAllocator()
	store := NewStore()
	fn := newFn(ids, "only", OriginUser, nil)
	store.Register(fn)
	store.Freeze()

	got, ok := store.GetEntry(fn.NodeID())
	if !ok || got.EntryName() != "only" {
		t.Fatalf("GetEntry did not return the registered function")
	}

	funcs := store.Functions()
	if len(funcs) != 1 || funcs[0] != fn {
		t.Fatalf("Functions() did not return the registered function")
	}
}
