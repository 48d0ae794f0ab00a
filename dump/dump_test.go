package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/stretchr/testify/require"
)

func testContractState() state.Contract {
	var st state.Contract
	st.ID = 1
	st.UpdateCounter = 2
	st.Hash = util.Uint160{1, 2, 3}
	st.NEF.Checksum = 42
	st.Manifest = *manifest.NewManifest("SupplyChain")
	return st
}

func TestSection(t *testing.T) {
	owner := util.Uint160{9}

	for key, exp := range map[string]string{
		"admin":                             SectionSettings,
		"heads":                             SectionSettings,
		"ConversionMode":                    SectionSettings,
		"c" + string(owner.BytesBE()):       SectionCompany,
		"Q" + string(owner.BytesBE()):       SectionIncomingRequests,
		"s" + string(owner.BytesBE()) + "1": SectionSupply,
		"S" + string(owner.BytesBE()) + "1": SectionPrerequisiteSupply,
		"nflour":                            SectionProductName,
		"z":                                 SectionUnknown,
		"":                                  SectionUnknown,
	} {
		require.Equal(t, exp, Section([]byte(key)), key)
	}
}

func TestCreator(t *testing.T) {
	var (
		dir = t.TempDir()
		id  = ID{Label: "testnet", Block: 100}
		st  = testContractState()
	)

	c, err := NewCreator(dir, id)
	require.NoError(t, err)

	c.SetContract("supplychain", st)
	require.NoError(t, c.Write([]byte("admin"), []byte{1, 2, 3}))
	require.NoError(t, c.Write([]byte{'c', 1}, []byte("company")))
	require.NoError(t, c.Write([]byte{'s', 1, 2}, []byte("supply")))
	require.NoError(t, c.Write([]byte{'s', 1, 3}, []byte{}))
	require.NoError(t, c.Flush())
	c.Close()

	_, err = NewCreator(dir, id)
	require.ErrorIs(t, err, os.ErrExist)

	r, err := ReadDump(dir, id)
	require.NoError(t, err)

	name, rst := r.Contract()
	require.Equal(t, "supplychain", name)
	require.Equal(t, st.Hash, rst.Hash)
	require.EqualValues(t, 42, rst.NEF.Checksum)
	require.Equal(t, "SupplyChain", rst.Manifest.Name)

	var items []Item
	r.IterateStorage(func(item Item) { items = append(items, item) })
	require.Equal(t, []Item{
		{Section: SectionSettings, Key: []byte("admin"), Value: []byte{1, 2, 3}},
		{Section: SectionCompany, Key: []byte{'c', 1}, Value: []byte("company")},
		{Section: SectionSupply, Key: []byte{'s', 1, 2}, Value: []byte("supply")},
		{Section: SectionSupply, Key: []byte{'s', 1, 3}, Value: []byte{}},
	}, items)

	require.Equal(t, map[string]int{
		SectionSettings: 1,
		SectionCompany:  1,
		SectionSupply:   2,
	}, r.SectionSizes())
}

func TestCreator_InvalidID(t *testing.T) {
	dir := t.TempDir()

	_, err := NewCreator(dir, ID{Block: 1})
	require.Error(t, err)

	_, err = NewCreator(dir, ID{Label: "test-net", Block: 1})
	require.Error(t, err)
}

func TestCreator_NoContract(t *testing.T) {
	c, err := NewCreator(t.TempDir(), ID{Label: "mainnet", Block: 1})
	require.NoError(t, err)
	t.Cleanup(c.Close)

	require.Error(t, c.Flush())
}

func TestIterateDumps(t *testing.T) {
	dir := t.TempDir()

	ids := []ID{
		{Label: "testnet", Block: 20},
		{Label: "mainnet", Block: 7},
		{Label: "testnet", Block: 3},
	}

	for i, id := range ids {
		c, err := NewCreator(dir, id)
		require.NoError(t, err)

		c.SetContract("supplychain", testContractState())
		for j := 0; j <= i; j++ {
			require.NoError(t, c.Write([]byte{'p', byte(j)}, []byte{byte(j)}))
		}
		require.NoError(t, c.Flush())
		c.Close()
	}

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("not a dump"), 0600))

	var (
		seen  []ID
		sizes []int
	)
	err := IterateDumps(dir, func(id ID, r *Reader) {
		seen = append(seen, id)
		sizes = append(sizes, r.SectionSizes()[SectionProduct])
	})
	require.NoError(t, err)
	require.Equal(t, []ID{ids[1], ids[2], ids[0]}, seen)
	require.Equal(t, []int{2, 3, 1}, sizes)

	require.NoError(t, IterateDumps(filepath.Join(dir, "missing"), func(ID, *Reader) {
		t.Fatal("must not be called")
	}))
}

func TestReadDump_Corrupted(t *testing.T) {
	var (
		dir = t.TempDir()
		id  = ID{Label: "testnet", Block: 1}
	)

	c, err := NewCreator(dir, id)
	require.NoError(t, err)
	c.SetContract("supplychain", testContractState())
	require.NoError(t, c.Write([]byte("admin"), []byte{1}))
	require.NoError(t, c.Flush())
	c.Close()

	require.NoError(t, os.WriteFile(dumpFilePath(dir, id, storageFileSuffix), nil, 0600))

	_, err = ReadDump(dir, id)
	require.ErrorContains(t, err, "items")
}
