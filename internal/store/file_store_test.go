package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vannalasai/dhanalaxmi-cli/internal/store"
)

func TestKeyDerivation(t *testing.T) {
	assert.Equal(t, "cart_u1", store.Key("cart", "u1"))
	assert.Equal(t, "wishlist_u1", store.Key("wishlist", "u1"))
	assert.NotEqual(t, store.Key("cart", "u1"), store.Key("cart", "u2"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")

	s, err := store.NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Get("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Set("cart_u1", []byte(`[{"variantId":"v1"}]`)))

	got, err := s.Get("cart_u1")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"variantId":"v1"}]`, string(got))
}

func TestFileStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")

	s, err := store.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("wishlist_u1", []byte(`[]`)))
	require.NoError(t, s.Set("session", []byte(`{"token":"x"}`)))

	reopened, err := store.NewFileStore(path)
	require.NoError(t, err)

	got, err := reopened.Get("session")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"x"}`, string(got))
}

func TestFileStoreDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")

	s, err := store.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte(`1`)))
	require.NoError(t, s.Delete("k"))
	require.NoError(t, s.Delete("k"), "deleting a missing key is a no-op")

	_, err = s.Get("k")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestFileStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "storefront.json")

	s, err := store.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte(`true`)))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := store.NewFileStore(path)
	assert.Error(t, err)
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := store.NewMemoryStore()
	require.NoError(t, s.Set("k", []byte(`"a"`)))

	got, err := s.Get("k")
	require.NoError(t, err)
	got[1] = 'z' // mutating the returned slice must not leak back

	again, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(again))
}
