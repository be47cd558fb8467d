package transkey_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OhanaFS/transkey"
	"github.com/OhanaFS/transkey/base24"
)

func randomSecret(t *testing.T) []byte {
	secret := make([]byte, transkey.SecretSize)
	_, err := rand.Read(secret)
	require.NoError(t, err)
	return secret
}

func xor(a, b []byte) []byte {
	out := make([]byte, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out
}

func TestCombineShares(t *testing.T) {
	assert := assert.New(t)
	a, b, c := randomSecret(t), randomSecret(t), randomSecret(t)

	single, err := transkey.CombineShares([][]byte{a})
	assert.NoError(err)
	assert.Equal(a, single)

	ab, err := transkey.CombineShares([][]byte{a, b})
	assert.NoError(err)
	assert.Equal(xor(a, b), ab)

	abc, err := transkey.CombineShares([][]byte{a, b, c})
	assert.NoError(err)
	cba, err := transkey.CombineShares([][]byte{c, b, a})
	assert.NoError(err)
	nested, err := transkey.CombineShares([][]byte{ab, c})
	assert.NoError(err)
	assert.Equal(abc, cba)
	assert.Equal(abc, nested)

	_, err = transkey.CombineShares(nil)
	assert.ErrorIs(err, transkey.ErrNotEnoughShares)

	_, err = transkey.CombineShares([][]byte{a, b[:16]})
	assert.ErrorIs(err, transkey.ErrKeyLength)
}

func TestSplitShares(t *testing.T) {
	assert := assert.New(t)
	secret := randomSecret(t)

	for n := 1; n <= transkey.MaxShares; n++ {
		shares, err := transkey.SplitShares(secret, n, rand.Reader)
		assert.NoError(err)
		assert.Len(shares, n)

		combined, err := transkey.CombineShares(shares)
		assert.NoError(err)
		assert.Equal(secret, combined)
	}

	_, err := transkey.SplitShares(secret, 0, rand.Reader)
	assert.ErrorIs(err, transkey.ErrInvalidShare)
	_, err = transkey.SplitShares(secret, 9, rand.Reader)
	assert.ErrorIs(err, transkey.ErrInvalidShare)
	_, err = transkey.SplitShares(secret[:31], 2, rand.Reader)
	assert.ErrorIs(err, transkey.ErrKeyLength)
	_, err = transkey.SplitShares(secret, 2, bytes.NewReader(nil))
	assert.Error(err)
}

func TestDecryptFixtureShares(t *testing.T) {
	assert := assert.New(t)
	codec := mainnet()

	share0, err := codec.DecryptShare(fixtureShare0, "1234", 2, 0)
	assert.NoError(err)
	assert.Equal(bytes.Repeat([]byte{0xA5}, transkey.SecretSize), share0)

	secret, err := codec.DecryptShares([]transkey.Share{
		{Key: fixtureShare0, PIN: "1234"},
		{Key: transkey.WithDashes(fixtureShare1), PIN: "5678"},
	})
	assert.NoError(err)
	assert.Equal(fixtureSecret(), secret)

	// Share index is bound into the prefix.
	_, err = codec.DecryptShares([]transkey.Share{
		{Key: fixtureShare1, PIN: "5678"},
		{Key: fixtureShare0, PIN: "1234"},
	})
	assert.ErrorIs(err, transkey.ErrPrefixMismatch)

	_, err = codec.DecryptShare(fixtureShare0, "1234", 3, 0)
	assert.ErrorIs(err, transkey.ErrPrefixMismatch)

	_, err = codec.DecryptShare(fixtureShare1, "1234", 2, 1)
	assert.ErrorIs(err, transkey.ErrChecksumMismatch)

	// A share is not a single key and the other way round.
	_, err = codec.Decrypt(fixtureShare0, "1234")
	assert.ErrorIs(err, transkey.ErrMalformedKey)
	_, err = codec.DecryptShare(fixtureMainnetKey, "1234", 2, 0)
	assert.ErrorIs(err, transkey.ErrMalformedKey)
}

func TestTamperedShare(t *testing.T) {
	assert := assert.New(t)
	codec := mainnet()

	check := func(key string, pos int) {
		secret, err := codec.DecryptShare(key, "1234", 2, 0)
		assert.Nil(secret, "position %d", pos)
		if assert.Error(err, "position %d", pos) {
			assert.True(
				isOneOf(err, transkey.ErrInvalidSymbol, transkey.ErrMalformedKey,
					transkey.ErrPrefixMismatch, transkey.ErrChecksumMismatch),
				"position %d: unexpected error %v", pos, err,
			)
		}
	}

	for i := 0; i < len(fixtureShare0); i++ {
		tampered := []byte(fixtureShare0)
		pos := bytes.IndexByte([]byte(base24.Alphabet), tampered[i])
		tampered[i] = base24.Alphabet[(pos+1)%len(base24.Alphabet)]
		check(string(tampered), i)
	}

	// These symbols cover the unused bits in front of the checksum.
	for i := 60; i <= 62; i++ {
		for _, sym := range []byte(base24.Alphabet) {
			if sym == fixtureShare0[i] {
				continue
			}
			tampered := []byte(fixtureShare0)
			tampered[i] = sym
			check(string(tampered), i)
		}
	}
}

func TestShareWithChecksumPadding(t *testing.T) {
	assert := assert.New(t)

	// fixtureShare0 with a copy of the checksum in place of the zero padding.
	const key = "3F7FQYCEVCQ3VNDN7VYEC4CHVN7X9VE9VYTRNQMPLF4CAUEEJUQHFRYUPQDAEYWDMWVQP"

	share, err := mainnet().DecryptShare(key, "1234", 2, 0)
	assert.NoError(err)
	assert.Equal(bytes.Repeat([]byte{0xA5}, transkey.SecretSize), share)

	info, err := transkey.Inspect(key)
	if assert.NoError(err) {
		assert.Equal(2, info.ShareCount)
		assert.Equal(0, info.ShareIndex)
	}
}

func TestEncryptShare(t *testing.T) {
	assert := assert.New(t)
	codec := mainnet()

	key, err := codec.EncryptShare(bytes.Repeat([]byte{0xA5}, transkey.SecretSize), "1234", 2, 0)
	assert.NoError(err)
	assert.Equal(fixtureShare0, key)

	single, err := codec.EncryptShare(fixtureSecret(), "1234", 1, 0)
	assert.NoError(err)
	assert.Equal(fixtureMainnetKey, single)

	_, err = codec.EncryptShare(fixtureSecret(), "1234", 2, 2)
	assert.ErrorIs(err, transkey.ErrInvalidShare)
	_, err = codec.EncryptShare(fixtureSecret(), "1234", 9, 0)
	assert.ErrorIs(err, transkey.ErrInvalidShare)
	_, err = codec.DecryptShare(fixtureShare0, "1234", 0, 0)
	assert.ErrorIs(err, transkey.ErrInvalidShare)
}

func TestEncryptShares(t *testing.T) {
	assert := assert.New(t)
	codec := testnet()
	secret := randomSecret(t)
	pins := []string{"1111", "2222", "3333"}

	keys, err := codec.EncryptShares(secret, pins, rand.Reader)
	require.NoError(t, err)
	require.Len(t, keys, len(pins))

	shares := make([]transkey.Share, len(keys))
	for i, key := range keys {
		shares[i] = transkey.Share{Key: key, PIN: pins[i]}
	}
	combined, err := codec.DecryptShares(shares)
	assert.NoError(err)
	assert.Equal(secret, combined)

	// Any missing share changes the expected share count.
	_, err = codec.DecryptShares(shares[:2])
	assert.ErrorIs(err, transkey.ErrPrefixMismatch)

	_, err = codec.DecryptShares(nil)
	assert.ErrorIs(err, transkey.ErrNotEnoughShares)
	_, err = codec.EncryptShares(secret, nil, rand.Reader)
	assert.ErrorIs(err, transkey.ErrNotEnoughShares)
}

func TestDashes(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", transkey.WithDashes(""))
	assert.Equal("ABC", transkey.WithDashes("ABC"))
	assert.Equal("ABCD", transkey.WithDashes("ABCD"))
	assert.Equal("ABCD-EFHJ-K", transkey.WithDashes("ABCDEFHJK"))
	assert.Equal("ABCDEFHJK", transkey.StripDashes(" ABCD-EFHJ-K "))
}
