package xmarker

import (
	"errors"
	"reflect"
	"sync"
	"testing"
)

func TestRegistry_Validation(t *testing.T) {
	reg := NewRegistry()

	t.Run("nil type", func(t *testing.T) {
		if err := reg.SetType(nil, Disabled()); !errors.Is(err, ErrNilType) {
			t.Errorf("expected ErrNilType, got %v", err)
		}
		if err := reg.SetMethod(nil, "Pay", Disabled()); !errors.Is(err, ErrNilType) {
			t.Errorf("expected ErrNilType, got %v", err)
		}
	})

	t.Run("empty method name", func(t *testing.T) {
		if err := reg.SetMethod(paymentType, "", Disabled()); !errors.Is(err, ErrEmptyMethodName) {
			t.Errorf("expected ErrEmptyMethodName, got %v", err)
		}
	})
}

func TestRegistry_PointerNormalization(t *testing.T) {
	reg := NewRegistry()
	// 指针登记、值查询应当等价。
	if err := reg.SetType(reflect.TypeOf(&paymentService{}), Disabled()); err != nil {
		t.Fatalf("SetType failed: %v", err)
	}
	markers := reg.TypeMarkers(reflect.TypeOf(paymentService{}))
	if len(markers) != 1 || !markers[0].IsDisabled() {
		t.Errorf("expected one disabled marker, got %v", markers)
	}
}

func TestRegistry_SnapshotIsolation(t *testing.T) {
	reg := NewRegistry()
	if err := reg.SetMethod(paymentType, "Pay", CaptureInput()); err != nil {
		t.Fatalf("SetMethod failed: %v", err)
	}

	snapshot := reg.MethodMarkers(paymentType, "Pay")
	snapshot[0] = Disabled()

	fresh := reg.MethodMarkers(paymentType, "Pay")
	if fresh[0].IsDisabled() {
		t.Error("mutating the snapshot must not affect the registry")
	}
}

func TestRegistry_UnknownLookups(t *testing.T) {
	reg := NewRegistry()
	if got := reg.TypeMarkers(paymentType); got != nil {
		t.Errorf("TypeMarkers = %v, expected nil", got)
	}
	if got := reg.MethodMarkers(paymentType, "Pay"); got != nil {
		t.Errorf("MethodMarkers = %v, expected nil", got)
	}
	if got := reg.MethodMarkers(nil, "Pay"); got != nil {
		t.Errorf("MethodMarkers(nil) = %v, expected nil", got)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = reg.SetMethod(paymentType, "Pay", CaptureInput())
		}()
		go func() {
			defer wg.Done()
			_ = reg.MethodMarkers(paymentType, "Pay")
		}()
	}
	wg.Wait()
}
