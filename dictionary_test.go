package sforth

import "testing"

func TestDictionaryLookupShadowing(t *testing.T) {
	as := newAddressSpace()
	d := newDictionary(as)

	firstTok := d.DefineVariable("x")
	if got := d.Lookup("x"); got == nil || got.addr != firstTok {
		t.Fatalf("Lookup(x) after first definition = %v", got)
	}

	secondTok := d.DefineVariable("x")
	if secondTok == firstTok {
		t.Fatal("redefining a name must mint a new address token")
	}

	got := d.Lookup("x")
	if got == nil {
		t.Fatal("Lookup(x) after redefinition = nil")
	}
	if got.addr != secondTok {
		t.Fatalf("Lookup(x) addr = %#x, want the newest definition's token %#x", uint32(got.addr), uint32(secondTok))
	}
}

func TestDictionaryLookupMissing(t *testing.T) {
	d := newDictionary(newAddressSpace())
	if got := d.Lookup("nope"); got != nil {
		t.Fatalf("Lookup(nope) = %v, want nil", got)
	}
}

func TestDictionaryDefinePrimitiveRecordsAddr(t *testing.T) {
	d := newDictionary(newAddressSpace())
	token := d.DefinePrimitive("dup", primDup)

	entry := d.Lookup("dup")
	if entry == nil {
		t.Fatal("Lookup(dup) = nil")
	}
	if entry.addr != token {
		t.Fatalf("entry.addr = %#x, want %#x", uint32(entry.addr), uint32(token))
	}
	if entry.kind != NativePrimitive {
		t.Fatalf("entry.kind = %v, want NativePrimitive", entry.kind)
	}
}
