package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Source hooks
	s := NoopSourceHooks{}
	s.OnListStart(ctx, "clone", "https://github.com/python/cpython.git")
	s.OnListComplete(ctx, "clone", "https://github.com/python/cpython.git", 500, time.Second, nil)

	// Matrix hooks
	m := NoopMatrixHooks{}
	m.OnTagRejected(ctx, "v3.12.0rc1", "pre-release marker")
	m.OnVersionAccepted(ctx, "v3.7.0", "3.7")
	m.OnBuildComplete(ctx, 500, 6)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "google.com", "/")
	h.OnResponse(ctx, "GET", "google.com", "/", 200, time.Second)
	h.OnError(ctx, "GET", "google.com", "/", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Source().(NoopSourceHooks); !ok {
		t.Error("Source() should return NoopSourceHooks by default")
	}
	if _, ok := Matrix().(NoopMatrixHooks); !ok {
		t.Error("Matrix() should return NoopMatrixHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customSource := &testSourceHooks{}
	SetSourceHooks(customSource)
	if Source() != customSource {
		t.Error("SetSourceHooks should set custom hooks")
	}

	customMatrix := &testMatrixHooks{}
	SetMatrixHooks(customMatrix)
	if Matrix() != customMatrix {
		t.Error("SetMatrixHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Matrix().(NoopMatrixHooks); !ok {
		t.Error("Reset() should restore NoopMatrixHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testMatrixHooks{}
	SetMatrixHooks(custom)

	// Setting nil should be ignored
	SetMatrixHooks(nil)

	if Matrix() != custom {
		t.Error("SetMatrixHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testSourceHooks struct{ NoopSourceHooks }
type testMatrixHooks struct{ NoopMatrixHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
