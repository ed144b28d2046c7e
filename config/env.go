// SPDX-License-Identifier: MIT

package config

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/segimage/segerr"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "SEGIMAGE_"

// LookupFunc reports the value of an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envReader applies variables in order and keeps the first parse error.
type envReader struct {
	lookup LookupFunc
	err    error
}

func (r *envReader) get(key string) (string, bool) {
	if r.err != nil {
		return "", false
	}
	v, ok := r.lookup(EnvPrefix + key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (r *envReader) fail(key, v string, err error) {
	r.err = segerr.Errorf("env", ErrInvalid, "%s%s=%q: %v", EnvPrefix, key, v, err)
}

func (r *envReader) stringVar(key string, dst *string) {
	if v, ok := r.get(key); ok {
		*dst = v
	}
}

func (r *envReader) intVar(key string, dst *int) {
	if v, ok := r.get(key); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (r *envReader) int64Var(key string, dst *int64) {
	if v, ok := r.get(key); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (r *envReader) uint64Var(key string, dst *uint64) {
	if v, ok := r.get(key); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = n
	}
}

func (r *envReader) floatVar(key string, dst *float64) {
	if v, ok := r.get(key); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = f
	}
}

func (r *envReader) boolVar(key string, dst *bool) {
	if v, ok := r.get(key); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		*dst = b
	}
}

func (r *envReader) floatsVar(key string, dst *[]float64) {
	v, ok := r.get(key)
	if !ok {
		return
	}
	parts := strings.Split(v, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			r.fail(key, v, err)
			return
		}
		out = append(out, f)
	}
	*dst = out
}

// ApplyEnv overrides c from SEGIMAGE_* variables found by lookup. Unset or
// empty variables leave the field alone; unparsable ones are an error.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	r := &envReader{lookup: lookup}

	r.intVar("SEGMENTS", &c.Segmentation.Segments)
	r.floatVar("COMPACTNESS", &c.Segmentation.Compactness)
	r.floatVar("SIGMA", &c.Segmentation.Sigma)
	r.intVar("ITERATIONS", &c.Segmentation.Iterations)

	r.stringVar("PARTITION_ALGORITHM", &c.Partition.Algorithm)
	r.floatsVar("RESOLUTIONS", &c.Partition.Resolutions)
	r.uint64Var("PARTITION_SEED", &c.Partition.Seed)

	r.int64Var("COLOR_SEED", &c.Color.Seed)

	r.stringVar("OUTPUT_DIR", &c.Output.Dir)
	r.stringVar("OUTPUT_FORMAT", &c.Output.Format)
	r.intVar("JPEG_QUALITY", &c.Output.JPEGQuality)
	r.boolVar("GRAPH_DOT", &c.Output.GraphDOT)

	r.stringVar("LOG_LEVEL", &c.Log.Level)
	r.stringVar("LOG_FORMAT", &c.Log.Format)

	r.stringVar("METRICS_TEXTFILE", &c.Metrics.Textfile)

	r.intVar("WORKERS", &c.Workers)

	return r.err
}
