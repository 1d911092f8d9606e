package stopping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessProbability(t *testing.T) {
	tests := []struct {
		name    string
		d, n, k int
		want    float64
	}{
		{name: "TwoCandidates", d: 1, n: 2, k: 1, want: 0.5},
		{name: "ThreeSkipOne", d: 1, n: 3, k: 1, want: 0.5},
		{name: "ThreeSkipTwo", d: 2, n: 3, k: 1, want: 1.0 / 3},
		{name: "FourSkipOne", d: 1, n: 4, k: 1, want: 11.0 / 24},
		{name: "TenSkipThree", d: 3, n: 10, k: 1, want: 0.398690476190476},
		{name: "KAboveN", d: 1, n: 4, k: 5, want: 0.75},
		{name: "KEqualsN", d: 1, n: 4, k: 4, want: 0.75},
		{name: "LastSlot", d: 9, n: 10, k: 1, want: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SuccessProbability(tt.d, tt.n, tt.k)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestZeroExploration(t *testing.T) {
	for n := 1; n <= 50; n++ {
		for _, k := range []int{1, 3, 5, 100} {
			p, err := SuccessProbability(0, n, k)
			require.NoError(t, err)
			if p != 0 {
				t.Fatalf("P(0, %d, %d) = %v, want 0", n, k, p)
			}
		}
	}
}

func TestBounds(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17, 60, 61, 150} {
		for _, k := range []int{1, 3, 5, n, n + 2} {
			den := NewDenominators(n, k)
			for d := 0; d < n; d++ {
				p := den.Success(d)
				if p < 0 || p > 1+1e-12 {
					t.Errorf("P(%d, %d, %d) = %v, outside [0, 1]", d, n, k, p)
				}
			}
		}
	}
}

func TestTopKMonotonic(t *testing.T) {
	for _, n := range []int{3, 10, 40, 120} {
		for d := 1; d < n; d++ {
			prev := 0.0
			for k := 1; k <= 8; k++ {
				p, err := SuccessProbability(d, n, k)
				require.NoError(t, err)
				if p < prev-1e-12 {
					t.Errorf("P(%d, %d, %d) = %v < P(..., k=%d) = %v", d, n, k, p, k-1, prev)
				}
				prev = p
			}
		}
	}
}

func TestSharedDenominators(t *testing.T) {
	den := NewDenominators(100, 5)
	assert.Equal(t, 100, den.N())
	assert.Equal(t, 5, den.K())
	for d := 0; d < 100; d++ {
		want, err := SuccessProbability(d, 100, 5)
		require.NoError(t, err)
		assert.Equal(t, want, den.Success(d), "d=%d", d)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		d, n, k int
		wantErr bool
	}{
		{name: "Ok", d: 3, n: 10, k: 1},
		{name: "ZeroD", d: 0, n: 1, k: 1},
		{name: "ZeroN", d: 0, n: 0, k: 1, wantErr: true},
		{name: "NegativeN", d: 0, n: -4, k: 1, wantErr: true},
		{name: "ZeroK", d: 1, n: 10, k: 0, wantErr: true},
		{name: "NegativeD", d: -1, n: 10, k: 1, wantErr: true},
		{name: "DAtN", d: 10, n: 10, k: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SuccessProbability(tt.d, tt.n, tt.k)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("SuccessProbability(%d, %d, %d) error = %v, want ErrInvalidArgument", tt.d, tt.n, tt.k, err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func BenchmarkCurveSweep(b *testing.B) {
	for i := 0; i < b.N; i++ {
		den := NewDenominators(300, 5)
		for d := 1; d < 300; d++ {
			den.Success(d)
		}
	}
}
