package engine

// captureValues gives the material value of capturing a piece of the
// given type, indexed by Piece.Type(). Scaled by 37 at use.
var captureValues = [8]int32{
	Empty:          0,
	PawnUpstream:   2,
	PawnDownstream: 2,
	Knight:         7,
	King:           -1,
	Bishop:         8,
	Rook:           12,
	Queen:          23,
}

// stepVectorIndex gives, per piece type, one less than the table
// position the direction generator starts reading from (the move
// loop pre-increments before indexing). Downstream pawns deliberately
// index into the upstream pawn's table entries: the generator negates
// whatever it reads, so reusing -16/-15/-17 with a one-position
// offset yields the mirrored +16/+15/+17 set.
var stepVectorIndex = [8]int8{
	Empty:          0,
	PawnUpstream:   7,
	PawnDownstream: -1,
	Knight:         11,
	King:           6,
	Bishop:         8,
	Rook:           3,
	Queen:          6,
}

// stepVectors is a flat, zero-terminated table of signed 0x88
// direction offsets: pawn captures/push (-16,-15,-17), rook (1,16),
// king/queen (1,16,15,17), knight (14,18,31,33). Bishops start partway
// into the king/queen run (skipping the orthogonal 1,16 pair) so they
// only ever see the diagonal directions.
var stepVectors = [17]int8{
	// Upstream pawn
	-16, -15, -17, 0,
	// Rook
	1, 16, 0,
	// King, queen
	1, 16, 15, 17, 0,
	// Knight
	14, 18, 31, 33, 0,
}
