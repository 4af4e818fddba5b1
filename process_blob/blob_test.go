package process_blob

import (
	"errors"
	"testing"

	"iemem/process"

	"github.com/google/go-cmp/cmp"
)

func TestProcessBlobReadMemory(t *testing.T) {
	blob := NewProcessBlob(0x1000, []byte{0, 1, 2, 3, 4, 5, 6, 7})

	tests := []struct {
		name    string
		addr    process.ProcessMemoryAddress
		size    process.ProcessMemorySize
		want    []byte
		wantErr bool
	}{
		{"whole", 0x1000, 8, []byte{0, 1, 2, 3, 4, 5, 6, 7}, false},
		{"middle", 0x1003, 2, []byte{3, 4}, false},
		{"empty at end", 0x1008, 0, []byte{}, false},
		{"before base", 0xfff, 2, nil, true},
		{"past end", 0x1007, 2, nil, true},
		{"far away", 0x9000, 1, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := blob.ReadMemory(tt.addr, tt.size)
			if tt.wantErr {
				if !errors.Is(err, process.ErrMemoryReadFailed) {
					t.Fatalf("err = %v, want ErrMemoryReadFailed", err)
				}
				if !errors.Is(err, process.ErrAddressNotMapped) {
					t.Errorf("err = %v, want it to wrap ErrAddressNotMapped", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMemory: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcessBlobReadMemoryCopies(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	blob := NewProcessBlob(0x10, data)

	got, err := blob.ReadMemory(0x10, 4)
	if err != nil {
		t.Fatalf("ReadMemory: %v", err)
	}
	got[0] = 0xff
	if data[0] != 1 {
		t.Errorf("ReadMemory returned an alias of the blob's storage")
	}
}

func TestProcessBlobReadMemoryInto(t *testing.T) {
	blob := NewProcessBlob(0x10, []byte{1, 2, 3, 4})

	buf := make([]byte, 2)
	_, err := blob.ReadMemoryInto(buf, 0x10, 4)
	var capErr *process.InsufficientCapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("err = %v, want *InsufficientCapacityError", err)
	}
	if !errors.Is(err, process.ErrInsufficientCapacity) {
		t.Errorf("err does not match ErrInsufficientCapacity")
	}
	if capErr.Expected != 4 || capErr.Actual != 2 {
		t.Errorf("capErr = %+v", capErr)
	}

	buf = make([]byte, 8)
	n, err := blob.ReadMemoryInto(buf, 0x11, 3)
	if err != nil {
		t.Fatalf("ReadMemoryInto: %v", err)
	}
	if n != 3 {
		t.Errorf("n = %d, want 3", n)
	}
	if diff := cmp.Diff([]byte{2, 3, 4, 0, 0, 0, 0, 0}, buf); diff != "" {
		t.Errorf("buf mismatch (-want +got):\n%s", diff)
	}
}
