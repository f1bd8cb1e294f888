package mapper

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapSlice(t *testing.T) {
	t.Run("nil input returns nil", func(t *testing.T) {
		got := MapSlice[int, string](nil, func(i int) string { return fmt.Sprintf("%d", i) })
		if got != nil {
			t.Errorf("MapSlice() = %v, want nil", got)
		}
	})

	t.Run("maps every element", func(t *testing.T) {
		got := MapSlice([]int{1, 2, 3}, func(i int) string { return fmt.Sprintf("num_%d", i) })
		want := []string{"num_1", "num_2", "num_3"}
		if len(got) != len(want) {
			t.Fatalf("MapSlice() length = %d, want %d", len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("MapSlice()[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("empty slice returns empty slice", func(t *testing.T) {
		got := MapSlice([]int{}, func(i int) string { return "" })
		if got == nil || len(got) != 0 {
			t.Errorf("MapSlice() = %v, want empty slice", got)
		}
	})
}

func TestMapSliceWithError(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		mapFunc func(int) (string, error)
		want    []string
		wantErr bool
	}{
		{
			name:    "nil input returns nil",
			input:   nil,
			mapFunc: func(i int) (string, error) { return fmt.Sprintf("%d", i), nil },
			want:    nil,
		},
		{
			name:    "successful mapping",
			input:   []int{1, 2, 3},
			mapFunc: func(i int) (string, error) { return fmt.Sprintf("num_%d", i), nil },
			want:    []string{"num_1", "num_2", "num_3"},
		},
		{
			name:  "middle element returns error",
			input: []int{1, 2, 3, 4, 5},
			mapFunc: func(i int) (string, error) {
				if i == 3 {
					return "", errors.New("error at element 3")
				}
				return fmt.Sprintf("num_%d", i), nil
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MapSliceWithError(tt.input, tt.mapFunc)

			if tt.wantErr {
				if err == nil {
					t.Error("MapSliceWithError() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("MapSliceWithError() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("MapSliceWithError() length = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("MapSliceWithError()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMapSlicePtrWithID(t *testing.T) {
	type record struct {
		ID   uint
		Name string
	}
	type view struct {
		Label string
	}

	getID := func(r *record) uint { return r.ID }

	t.Run("skips nil inputs and outputs", func(t *testing.T) {
		input := []*record{
			{ID: 1, Name: "a"},
			nil,
			{ID: 2, Name: ""},
			{ID: 3, Name: "c"},
		}
		got, err := MapSlicePtrWithID(input, func(r *record) (*view, error) {
			if r.Name == "" {
				return nil, nil
			}
			return &view{Label: r.Name}, nil
		}, getID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].Label != "a" || got[1].Label != "c" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("error includes item ID", func(t *testing.T) {
		input := []*record{{ID: 1, Name: "a"}, {ID: 42, Name: "bad"}}
		_, err := MapSlicePtrWithID(input, func(r *record) (*view, error) {
			if r.Name == "bad" {
				return nil, errors.New("boom")
			}
			return &view{Label: r.Name}, nil
		}, getID)
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "42") {
			t.Errorf("error %q does not mention item ID", err)
		}
	})

	t.Run("nil input returns nil", func(t *testing.T) {
		got, err := MapSlicePtrWithID(nil, func(r *record) (*view, error) { return nil, nil }, getID)
		if err != nil || got != nil {
			t.Errorf("got %v, %v", got, err)
		}
	})
}
