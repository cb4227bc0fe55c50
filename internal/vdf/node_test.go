package vdf

import (
	"reflect"
	"testing"
)

func TestObjectLookups(t *testing.T) {
	obj := Object{
		"name":  Scalar(""),
		"Name":  Scalar("Portal"),
		"child": Object{"k": Scalar("v")},
	}

	if _, ok := obj.GetString("child"); ok {
		t.Fatal("GetString should not match an object")
	}
	if _, ok := obj.GetObject("Name"); ok {
		t.Fatal("GetObject should not match a scalar")
	}
	if s, ok := obj.FirstString("name", "Name"); !ok || s != "Portal" {
		t.Fatalf("FirstString skipped empty value incorrectly: %q %v", s, ok)
	}
	if _, ok := obj.FirstString("missing"); ok {
		t.Fatal("FirstString should report missing keys")
	}
	if got := obj.Keys(); !reflect.DeepEqual(got, []string{"Name", "child", "name"}) {
		t.Fatalf("unexpected keys %v", got)
	}

	var nilObj Object
	if _, ok := nilObj.GetObject("x"); ok {
		t.Fatal("nil object lookup should miss")
	}
}
