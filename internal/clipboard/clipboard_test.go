package clipboard

import (
	"testing"

	"github.com/parley-sh/parley/internal/errors"
)

func TestImageData_Validate(t *testing.T) {
	tests := []struct {
		name    string
		img     ImageData
		wantErr bool
	}{
		{"small image", ImageData{Data: make([]byte, 1024), Width: 100, Height: 100}, false},
		{"too many bytes", ImageData{Data: make([]byte, MaxImageSize+1), Width: 10, Height: 10}, true},
		{"too wide", ImageData{Data: []byte{1}, Width: MaxImageDimension + 1, Height: 10}, true},
		{"too tall", ImageData{Data: []byte{1}, Width: 10, Height: MaxImageDimension + 1}, true},
		{"at the limit", ImageData{Data: make([]byte, MaxImageSize), Width: MaxImageDimension, Height: MaxImageDimension}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.img.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.KindInvalid) {
				t.Errorf("Validate() kind = %v, want KindInvalid", errors.GetKind(err))
			}
		})
	}
}

func TestImageData_SizeKB(t *testing.T) {
	img := ImageData{Data: make([]byte, 2048)}
	if got := img.SizeKB(); got != 2 {
		t.Errorf("SizeKB() = %d, want 2", got)
	}
}
