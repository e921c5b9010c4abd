package kzg

// Mainnet EIP-7594 preset. The core is written against these constants
// rather than threaded generic parameters -- see DESIGN.md for why this
// Open Question was resolved in favour of fixed constants.
const (
	// FieldElementsPerBlob is the number of scalars in an unextended blob.
	FieldElementsPerBlob = 4096

	// FieldElementsPerExtBlob is the number of scalars in the
	// Reed-Solomon-extended blob (2x FieldElementsPerBlob).
	FieldElementsPerExtBlob = 2 * FieldElementsPerBlob

	// FieldElementsPerCell is the number of scalars in a single cell.
	FieldElementsPerCell = 64

	// CellsPerExtBlob is the number of cells tiling the extended blob.
	CellsPerExtBlob = FieldElementsPerExtBlob / FieldElementsPerCell

	// cosetGenerator is the fixed coset shift factor mandated by the
	// EIP-7594 standard for cross-client compatibility. Do not parameterise.
	cosetGenerator = 7
)

// randomChallengeKZGCellBatchDomain is the Fiat-Shamir domain separator for
// verify_cell_kzg_proof_batch, fixed by spec.md §6.
var randomChallengeKZGCellBatchDomain = [16]byte{
	'R', 'C', 'K', 'Z', 'G', 'C', 'B', 'A', 'T', 'C', 'H', '_', '_', 'V', '1', '_',
}

// cellIndicesRBL[i] = ReverseBitsLimited(CellsPerExtBlob, i). Carried
// verbatim from original_source/kzg/src/das.rs's CELL_INDICES_RBL table.
var cellIndicesRBL = [CellsPerExtBlob]int{
	0x00, 0x40, 0x20, 0x60, 0x10, 0x50, 0x30, 0x70, 0x08, 0x48, 0x28, 0x68, 0x18, 0x58, 0x38, 0x78,
	0x04, 0x44, 0x24, 0x64, 0x14, 0x54, 0x34, 0x74, 0x0c, 0x4c, 0x2c, 0x6c, 0x1c, 0x5c, 0x3c, 0x7c,
	0x02, 0x42, 0x22, 0x62, 0x12, 0x52, 0x32, 0x72, 0x0a, 0x4a, 0x2a, 0x6a, 0x1a, 0x5a, 0x3a, 0x7a,
	0x06, 0x46, 0x26, 0x66, 0x16, 0x56, 0x36, 0x76, 0x0e, 0x4e, 0x2e, 0x6e, 0x1e, 0x5e, 0x3e, 0x7e,
	0x01, 0x41, 0x21, 0x61, 0x11, 0x51, 0x31, 0x71, 0x09, 0x49, 0x29, 0x69, 0x19, 0x59, 0x39, 0x79,
	0x05, 0x45, 0x25, 0x65, 0x15, 0x55, 0x35, 0x75, 0x0d, 0x4d, 0x2d, 0x6d, 0x1d, 0x5d, 0x3d, 0x7d,
	0x03, 0x43, 0x23, 0x63, 0x13, 0x53, 0x33, 0x73, 0x0b, 0x4b, 0x2b, 0x6b, 0x1b, 0x5b, 0x3b, 0x7b,
	0x07, 0x47, 0x27, 0x67, 0x17, 0x57, 0x37, 0x77, 0x0f, 0x4f, 0x2f, 0x6f, 0x1f, 0x5f, 0x3f, 0x7f,
}
