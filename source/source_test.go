package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/reoring/skemata"
	g "github.com/reoring/skemata/dsl"
	"github.com/reoring/skemata/report"
	"github.com/reoring/skemata/source"
)

var user = g.Object(g.Props{
	"name": g.Field(g.String()),
	"age": g.Field(g.WithMessage(g.Int(), func(in any) string {
		return "age must be an integer"
	})),
})

func TestParseFormat(t *testing.T) {
	cases := map[string]source.Format{
		"json":                            source.JSON,
		"application/json; charset=utf-8": source.JSON,
		"YAML":                            source.YAML,
		"application/x-yaml":              source.YAML,
		"application/msgpack":             source.MsgPack,
	}
	for in, want := range cases {
		got, err := source.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := source.ParseFormat("text/csv")
	assert.Error(t, err)
	assert.Equal(t, "yaml", source.YAML.String())
}

func TestUnmarshal_JSON(t *testing.T) {
	v, err := source.Unmarshal(source.JSON, []byte(`{"name":"Reo","tags":["a"],"n":1.5}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "Reo", "tags": []any{"a"}, "n": 1.5}, v)

	_, err = source.Unmarshal(source.JSON, []byte(`{`))
	assert.Error(t, err)
	_, err = source.Unmarshal(source.JSON, nil)
	assert.ErrorIs(t, err, source.ErrEmptyInput)
}

func TestUnmarshal_YAMLNormalizesMaps(t *testing.T) {
	v, err := source.Unmarshal(source.YAML, []byte("name: Reo\nnested:\n  1: one\nlist:\n  - k: v\n"))
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Reo", m["name"])
	assert.Equal(t, map[string]any{"1": "one"}, m["nested"])
	assert.Equal(t, []any{map[string]any{"k": "v"}}, m["list"])
}

func TestUnmarshal_MsgPack(t *testing.T) {
	data, err := msgpack.Marshal(map[string]any{"name": "Reo", "age": 30, "meta": map[int]string{7: "x"}})
	require.NoError(t, err)
	v, err := source.Unmarshal(source.MsgPack, data)
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Reo", m["name"])
	assert.Equal(t, map[string]any{"7": "x"}, m["meta"])

	got, err := skemata.Parse(context.Background(), g.Int(), m["age"])
	require.NoError(t, err)
	assert.Equal(t, int64(30), got)
}

func TestDecode_AllFormats(t *testing.T) {
	ctx := context.Background()
	payloads := map[source.Format][]byte{
		source.JSON: []byte(`{"name":"Reo","age":30}`),
		source.YAML: []byte("name: Reo\nage: 30\n"),
	}
	packed, err := msgpack.Marshal(map[string]any{"name": "Reo", "age": 30})
	require.NoError(t, err)
	payloads[source.MsgPack] = packed

	for f, data := range payloads {
		v := source.Decode(ctx, user, f, data)
		require.True(t, v.IsOk(), "%s: %v", f, v.Err())
		assert.Equal(t, "Reo", v.Value()["name"], f.String())
		assert.EqualValues(t, 30, v.Value()["age"], f.String())
	}
}

func TestDecode_CustomMessageSurvivesFormat(t *testing.T) {
	v := source.Decode(context.Background(), user, source.YAML, []byte("name: Reo\nage: thirty\n"))
	require.False(t, v.IsOk())
	assert.Equal(t, []string{"age must be an integer"}, report.Paths(v))
}

func TestDecode_ParseErrorAtRoot(t *testing.T) {
	v := source.Decode(context.Background(), user, source.JSON, []byte(`{"name":`))
	require.False(t, v.IsOk())
	fs := v.Err()
	require.Len(t, fs, 1)
	assert.Equal(t, skemata.CodeParseError, fs[0].Code)
	assert.Equal(t, "/", fs[0].Context.Pointer())
	assert.NotEmpty(t, fs[0].Message)
}

func TestDuplicateKeys(t *testing.T) {
	data := []byte(`{"a":1,"xs":[{"k":1,"k":2},{"k":3}],"o":{"b":[1,2],"b":null},"a":2}`)
	dups, err := source.DuplicateKeys(data, nil)
	require.NoError(t, err)
	ptrs := make([]string, len(dups))
	for i, p := range dups {
		ptrs[i] = p.Pointer()
	}
	assert.Equal(t, []string{"/xs/0/k", "/o/b", "/a"}, ptrs)

	for _, truncated := range []string{`{"a":`, `{"a":1,"a"`, `[{"k":1,"k":`} {
		_, err = source.DuplicateKeys([]byte(truncated), nil)
		assert.Error(t, err, truncated)
	}
}

func TestDecodeWith_RejectDuplicateKeys(t *testing.T) {
	ctx := context.Background()
	data := []byte(`{"name":"Reo","age":1,"age":2}`)

	v := source.Decode(ctx, user, source.JSON, data)
	require.True(t, v.IsOk(), "duplicates are accepted unless rejected: %v", v.Err())

	v = source.DecodeWith(ctx, user, data, source.Options{Format: source.JSON, RejectDuplicateKeys: true})
	require.False(t, v.IsOk())
	fs := v.Err()
	require.Len(t, fs, 1)
	assert.Equal(t, skemata.CodeDuplicateKey, fs[0].Code)
	assert.Equal(t, "/age", fs[0].Context.Pointer())
	assert.Equal(t, "age", fs[0].Value)
}
