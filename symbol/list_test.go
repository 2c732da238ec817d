package symbol

import "testing"

func TestListOrder(t *testing.T) {
	l := NewList(Func("vm_gc_collect"), Func("vm_gc_enable"), Func("vm_throw"))

	want := []string{"vm_gc_collect", "vm_gc_enable", "vm_throw"}
	if l.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", l.Len(), len(want))
	}
	for i, name := range want {
		if l.At(i).Name != name {
			t.Errorf("At(%d).Name = %q, want %q", i, l.At(i).Name, name)
		}
	}
}

func TestListConcat(t *testing.T) {
	a := NewList(Func("vm_a"), Func("vm_b"))
	b := NewList(Func("vm_c"))

	c := a.Concat(b)
	if c.Len() != 3 {
		t.Fatalf("Concat Len() = %d, want 3", c.Len())
	}
	if c.At(2).Name != "vm_c" {
		t.Errorf("appended entry out of order: At(2) = %q", c.At(2).Name)
	}

	// Concat must not alias the operands.
	a.Append(Func("vm_d"))
	if c.Len() != 3 {
		t.Error("Concat result shares storage with operand")
	}
}

func TestListEntriesCopy(t *testing.T) {
	l := NewList(Ptr("vm_main_module"))
	entries := l.Entries()
	entries[0].Name = "mutated"

	if l.At(0).Name != "vm_main_module" {
		t.Error("Entries() exposed internal storage")
	}
}

func TestDescriptorConstructors(t *testing.T) {
	tests := []struct {
		d        Descriptor
		category Category
		typ      string
	}{
		{Ptr("vm_main_module"), DataPointer, ""},
		{Var("vm_page_size", "uint64"), DataSymbol, "uint64"},
		{Func("vm_gc_collect"), RuntimeFunc, ""},
		{AddrSlot("vm_f_addr"), RuntimeFuncAddrSlot, ""},
		{Codegen("vm_box_int64"), CodegenFunc, ""},
	}

	for _, tt := range tests {
		if tt.d.Category != tt.category {
			t.Errorf("%s: Category = %v, want %v", tt.d.Name, tt.d.Category, tt.category)
		}
		if tt.d.Type != tt.typ {
			t.Errorf("%s: Type = %q, want %q", tt.d.Name, tt.d.Type, tt.typ)
		}
		if tt.d.Platform != PlatformAny {
			t.Errorf("%s: Platform = %v, want PlatformAny", tt.d.Name, tt.d.Platform)
		}
	}

	w := Func("vm_win_only").OnWindows()
	if w.Platform != PlatformWindows {
		t.Errorf("OnWindows Platform = %v, want PlatformWindows", w.Platform)
	}
}

func TestListsMerge(t *testing.T) {
	a := Lists{RuntimeFuncs: NewList(Func("vm_a"))}
	b := Lists{
		RuntimeFuncs: NewList(Func("vm_b")),
		CodegenFuncs: NewList(Codegen("vm_c")),
	}

	m := a.Merge(b)
	if m.RuntimeFuncs.Len() != 2 {
		t.Errorf("RuntimeFuncs.Len() = %d, want 2", m.RuntimeFuncs.Len())
	}
	if m.RuntimeFuncs.At(0).Name != "vm_a" || m.RuntimeFuncs.At(1).Name != "vm_b" {
		t.Error("Merge changed declaration order")
	}
	if m.Total() != 3 {
		t.Errorf("Total() = %d, want 3", m.Total())
	}
}
