package utils

import (
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/UCDC-Institute/Website_BCMS/res"
)

func TestConcurrencyRunsAll(t *testing.T) {
	var ran int64
	errRes := Concurrency(3, 20, func(index int, setError func(errRes *res.ErrorRes)) {
		atomic.AddInt64(&ran, 1)
	})
	if errRes != nil {
		t.Fatalf("unexpected error: %s", errRes.Err)
	}
	if ran != 20 {
		t.Errorf("ran %d times, want 20", ran)
	}
}

func TestConcurrencyReportsError(t *testing.T) {
	wantErr := errors.New("boom")
	errRes := Concurrency(2, 10, func(index int, setError func(errRes *res.ErrorRes)) {
		if index == 4 {
			setError(&res.ErrorRes{
				Err:        wantErr,
				StatusCode: http.StatusServiceUnavailable,
			})
		}
	})
	if errRes == nil {
		t.Fatal("error not reported")
	}
	if !errors.Is(errRes.Err, wantErr) {
		t.Errorf("err = %v, want %v", errRes.Err, wantErr)
	}
	if errRes.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", errRes.StatusCode)
	}
}
