package enums

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore(t *testing.T) {
	s := diskStore{root: t.TempDir()}
	assert.Equal(t, filepath.Join(s.root, "actions", "GITHUB_STAR_REPO"), s.path(NamespaceAction, "GITHUB_STAR_REPO"))

	slugs, exists, err := s.list(NamespaceAction)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, slugs)

	_, err = s.read(NamespaceAction, "X")
	require.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, s.write(NamespaceAction, "B", []byte(`{"b":1}`)))
	require.NoError(t, s.write(NamespaceAction, "A", []byte(`{"a":1}`)))
	require.NoError(t, s.write(NamespaceAction, "A", []byte(`{"a":2}`)))
	require.NoError(t, os.WriteFile(filepath.Join(s.dir(NamespaceAction), ".A.tmp"), nil, 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(s.dir(NamespaceAction), "sub"), 0o750))

	data, err := s.read(NamespaceAction, "A")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(data))

	slugs, exists, err = s.list(NamespaceAction)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, []string{"A", "B"}, slugs)

	require.NoError(t, s.remove(NamespaceAction, "A"))
	require.NoError(t, s.remove(NamespaceAction, "A"))
	slugs, _, err = s.list(NamespaceAction)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, slugs)
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name    string
		id      any
		want    string
		invalid bool
	}{
		{"lower", "github", "GITHUB", false},
		{"spaces", "  gh_push ", "GH_PUSH", false},
		{"entity", &Entity{Slug: "X"}, "X", false},
		{"entity value", Entity{Slug: "y"}, "Y", false},
		{"named string type", NamespaceApp, "", true},
		{"nil entity", (*Entity)(nil), "", true},
		{"int", 42, "", true},
		{"nil", nil, "", true},
		{"empty", " ", "", true},
		{"separator", "a/b", "", true},
		{"backslash", `a\b`, "", true},
		{"dotfile", ".hidden", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.id)
			if tt.invalid {
				require.ErrorIs(t, err, ErrInvalidEnum)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamespace(t *testing.T) {
	for _, ns := range Namespaces {
		assert.True(t, ns.Valid())
	}
	assert.Equal(t, "triggers", NamespaceTrigger.Dir())
	assert.False(t, Namespace("widget").Valid())
	require.ErrorIs(t, Namespace("widget").check(), ErrUnknownNamespace)
}

func TestEnumStringNotFoundError(t *testing.T) {
	many := make([]string, 12)
	for i := range many {
		many[i] = string(rune('A' + i))
	}
	err := &EnumStringNotFoundError{Namespace: NamespaceApp, Slug: "Z", Candidates: many}
	assert.Contains(t, err.Error(), `app "Z" not found`)
	assert.Contains(t, err.Error(), "(2 more)")
	assert.Len(t, err.Unwrap(), 1)

	empty := &EnumStringNotFoundError{Namespace: NamespaceApp, Slug: "Z"}
	assert.Contains(t, empty.Error(), "no resolvable values")
}

func TestValidateMetadata(t *testing.T) {
	tests := []struct {
		name  string
		ns    Namespace
		data  string
		valid bool
	}{
		{"app", NamespaceApp, `{"name":"gh","is_local":false}`, true},
		{"app extra fields", NamespaceApp, `{"name":"gh","is_local":false,"logo":"x"}`, true},
		{"app missing marker", NamespaceApp, `{"name":"gh"}`, false},
		{"action", NamespaceAction, `{"name":"a","app":"GH","tags":[],"no_auth":true,"is_local":false}`, true},
		{"action missing tags", NamespaceAction, `{"name":"a","app":"GH","no_auth":true,"is_local":false}`, false},
		{"tag wrong type", NamespaceTag, `{"app":"GH","value":1}`, false},
		{"trigger", NamespaceTrigger, `{"slug":"S","name":"n","app":"GH"}`, true},
		{"not json", NamespaceTrigger, `{`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateMetadata(tt.ns, []byte(tt.data))
			if tt.valid {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	r := NewRuntime()
	require.NoError(t, r.Register(NamespaceApp, "gh", AppMetadata{Name: "gh", IsLocal: true}))
	require.ErrorIs(t, r.Register(Namespace("widget"), "gh", AppMetadata{}), ErrUnknownNamespace)
	require.ErrorIs(t, r.Register(NamespaceApp, 7, AppMetadata{}), ErrInvalidEnum)
	require.Error(t, r.Register(NamespaceApp, "list", []string{"x"}))

	meta, ok := r.Lookup(NamespaceApp, "GH")
	require.True(t, ok)
	assert.Equal(t, true, meta["is_local"])
	meta["is_local"] = false
	again, _ := r.Lookup(NamespaceApp, "GH")
	assert.Equal(t, true, again["is_local"])

	assert.Equal(t, []string{"GH"}, r.Slugs(NamespaceApp))
	assert.True(t, r.Unregister(NamespaceApp, "gh"))
	assert.False(t, r.Unregister(NamespaceApp, "gh"))
	assert.Empty(t, r.Slugs(NamespaceApp))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(EnvCacheDir, "")
	t.Setenv(EnvNoRemoteEnumFetching, "")
	require.NoError(t, os.Unsetenv(EnvCacheDir))
	require.NoError(t, os.Unsetenv(EnvNoRemoteEnumFetching))
	cfg, err := LoadConfig()
	require.NoError(t, err)
	def, err := DefaultCacheDir()
	require.NoError(t, err)
	assert.Equal(t, def, cfg.CacheDir)
	assert.False(t, cfg.NoRemoteEnumFetching)

	t.Setenv(EnvCacheDir, "/tmp/enums")
	t.Setenv(EnvNoRemoteEnumFetching, "1")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{CacheDir: "/tmp/enums", NoRemoteEnumFetching: true}, cfg)
}
