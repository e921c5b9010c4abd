package kzg

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// jsonTrustedSetup is the on-disk JSON representation of a trusted setup:
// hex-encoded compressed G1 and G2 points, monomial basis, following the
// field naming used by roberto-bayardo-go-kzg's JSONTrustedSetup.
type jsonTrustedSetup struct {
	G1Monomial []string `json:"g1_monomial"`
	G2Monomial []string `json:"g2_monomial"`
}

// LoadTrustedSetupJSON parses a JSON-encoded trusted setup and builds the
// KZGSettings derived from it, running the FK20 precomputation along the
// way. The fft settings width is fixed at FieldElementsPerExtBlob, per the
// mainnet EIP-7594 preset.
func LoadTrustedSetupJSON(data []byte) (*KZGSettings, error) {
	var parsed jsonTrustedSetup
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Wrap(err, "load trusted setup: parse JSON")
	}

	g1Monomial, err := decodeG1Hex(parsed.G1Monomial)
	if err != nil {
		return nil, errors.Wrap(err, "load trusted setup: g1 monomial")
	}
	g2Monomial, err := decodeG2Hex(parsed.G2Monomial)
	if err != nil {
		return nil, errors.Wrap(err, "load trusted setup: g2 monomial")
	}

	fs := NewFFTSettings(fftScaleForWidth(FieldElementsPerExtBlob))

	ks, err := NewKZGSettings(fs, g1Monomial, g2Monomial)
	if err != nil {
		return nil, errors.Wrap(err, "load trusted setup: build settings")
	}

	log.Info().
		Int("g1_points", len(g1Monomial)).
		Int("g2_points", len(g2Monomial)).
		Msg("loaded trusted setup")

	return ks, nil
}

func decodeG1Hex(points []string) ([]G1, error) {
	out := make([]G1, len(points))
	for i, s := range points {
		raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, errors.Wrapf(err, "g1 point %d: invalid hex", i)
		}
		if len(raw) != 48 {
			return nil, errors.Wrapf(ErrInvalidLength, "g1 point %d: got %d bytes, want 48", i, len(raw))
		}
		var b [48]byte
		copy(b[:], raw)
		p, err := G1FromBytes(b)
		if err != nil {
			return nil, errors.Wrapf(err, "g1 point %d", i)
		}
		out[i] = p
	}
	return out, nil
}

func decodeG2Hex(points []string) ([]G2, error) {
	out := make([]G2, len(points))
	for i, s := range points {
		raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
		if err != nil {
			return nil, errors.Wrapf(err, "g2 point %d: invalid hex", i)
		}
		if len(raw) != 96 {
			return nil, errors.Wrapf(ErrInvalidLength, "g2 point %d: got %d bytes, want 96", i, len(raw))
		}
		var b [96]byte
		copy(b[:], raw)
		p, err := G2FromBytes(b)
		if err != nil {
			return nil, errors.Wrapf(err, "g2 point %d", i)
		}
		out[i] = p
	}
	return out, nil
}

// fftScaleForWidth returns the log2 of width, which NewFFTSettings wants as
// its maxScale argument. width must be a power of two.
func fftScaleForWidth(width uint64) uint8 {
	var scale uint8
	for (uint64(1) << scale) < width {
		scale++
	}
	return scale
}
