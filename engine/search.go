package engine

// Scoring and depth limits shared by the search routine and driver.
const (
	ScoreMax int32 = 8000
	DepthMax uint8 = 99
)

// searchMode selects which of the four jobs a single search frame is
// performing this call. Every frame still does full generation,
// scoring, make/unmake and recursion regardless of mode; mode only
// gates what happens to a candidate move once it has been evaluated.
type searchMode uint8

const (
	modeInternal searchMode = iota
	modeEnumerate
	modeFindBest
	modePlay
)

// b2i32 mirrors the implicit int promotion C gives a boolean
// expression used in integer arithmetic ("alpha -= alpha < score").
func b2i32(cond bool) int32 {
	if cond {
		return 1
	}
	return 0
}

// search is the recursive alpha-beta routine: it simultaneously
// generates pseudo-legal moves, orders and scores them, recurses, and
// -- depending on mode -- enumerates, commits, or merely evaluates
// them. alpha/beta are the search window, score is the static
// evaluation of the position one ply up (sign-flipped per ply),
// enPassant is the en-passant target in effect for this ply, depth is
// the depth ceiling for this frame's iterative deepening, and mode
// selects the operating job described in package driver.go.
func (e *Engine) search(alpha, beta, score int32, enPassant Square, depth uint8, mode searchMode) int32 {
	if e.callback != nil {
		e.callback(e, e.userData)
	}

	var (
		iterDepth      uint8
		iterScore      int32
		iterSquareFrom Square
		iterSquareTo   Square

		squareStart Square
		squareFrom  Square
		squareTo    Square

		replayMove     Square
		nullMoveScore  int32

		scanPiece     Piece
		scanPieceType Piece

		stepVector      int8
		stepVectorIdx   int8

		castlingSkipSquare Square
		castlingRookSquare Square

		captureSquare      Square
		capturePiece       Piece
		capturePieceValue  int32

		stepDepth   uint8
		stepAlpha   int32
		stepScore   int32
		stepScoreNew int32
	)

	// Adjust window: delay bonus.
	alpha -= b2i32(alpha < score)
	beta -= b2i32(beta <= score)

	iterDepth = 0
	iterScore = 0
	iterSquareFrom = 0
	iterSquareTo = 0

	for {
		oldIterDepth := iterDepth
		iterDepth++

		keepGoing := oldIterDepth < depth
		if !keepGoing {
			keepGoing = iterDepth < 3
		}
		if !keepGoing && mode != modeInternal && e.squareFrom == SquareInvalid {
			if e.nodeCount < e.nodeMax && iterDepth <= uint8(e.depthMax) {
				keepGoing = true
			} else {
				e.squareFrom = iterSquareFrom
				e.squareTo = iterSquareTo &^ boardMask
				iterDepth = 3
				keepGoing = true
			}
		}
		if !keepGoing {
			break
		}

		if e.stopSearch {
			break
		}

		if mode != modeEnumerate {
			squareFrom = iterSquareFrom
		} else {
			squareFrom = 0
		}
		squareStart = squareFrom

		// Try the best-move hint before falling back to a normal scan.
		replayMove = iterSquareTo & SquareInvalid

		e.currentSide ^= 0x18

		if iterDepth > 2 && beta != -ScoreMax {
			nullMoveScore = e.search(-beta, 1-beta, -score, SquareInvalid, iterDepth-3, modeInternal)
		} else {
			nullMoveScore = ScoreMax
		}

		e.currentSide ^= 0x18

		if -nullMoveScore < beta || e.nonPawnMaterial > 35 {
			if iterDepth-2 != 0 {
				iterScore = -ScoreMax
			} else {
				iterScore = score
			}
		} else {
			iterScore = -nullMoveScore
		}

		e.nodeCount++

	scanLoop:
		for {
			scanPiece = e.board.at(squareFrom)

			if scanPiece&e.currentSide != 0 {
				scanPieceType = scanPiece & pieceTypeMask
				stepVector = int8(scanPieceType)
				stepVectorIdx = stepVectorIndex[scanPieceType]

				for {
					if scanPieceType > 2 && stepVector < 0 {
						stepVector = -stepVector
					} else {
						stepVectorIdx++
						stepVector = -stepVectors[stepVectorIdx]
					}
					if stepVector == 0 {
						break
					}

				replay:
					squareTo = squareFrom
					castlingSkipSquare = SquareInvalid
					castlingRookSquare = SquareInvalid

					for {
						if replayMove != 0 {
							squareTo = iterSquareTo ^ replayMove
						} else {
							squareTo = squareTo + Square(stepVector)
						}
						captureSquare = squareTo

						if offBoard(squareTo) {
							break
						}

						if enPassant != SquareInvalid && e.board.at(enPassant) != Empty &&
							(squareTo-enPassant) < 2 && (enPassant-squareTo) < 2 {
							iterScore = ScoreMax
						}

						if scanPieceType < 3 && squareTo == enPassant {
							captureSquare ^= 16
						}

						capturePiece = e.board.at(captureSquare)

						if capturePiece&e.currentSide != 0 ||
							(scanPieceType < 3 && b2i32((squareTo-squareFrom)&0x07 == 0) == b2i32(capturePiece != Empty)) {
							break
						}

						capturePieceValue = 37*captureValues[capturePiece&pieceTypeMask] + int32(capturePiece&0xc0)

						if capturePiece&pieceTypeMask == King {
							iterScore = ScoreMax
							iterDepth = DepthMax - 1
						}

						if iterScore >= beta && iterDepth > 1 {
							break scanLoop
						}

						if iterDepth != 1 {
							stepScore = score
						} else {
							stepScore = capturePieceValue - int32(scanPieceType)
						}

						if int32(iterDepth)-b2i32(capturePiece == Empty) > 1 {
							if scanPieceType < 6 {
								stepScore = int32(e.board.at(squareFrom+0x8)) - int32(e.board.at(squareTo+0x8))
							} else {
								stepScore = 0
							}

							e.board.set(castlingRookSquare, Empty)
							e.board.set(captureSquare, Empty)
							e.board.set(squareFrom, Empty)

							e.board.set(squareTo, scanPiece|Moved)

							if !offBoard(castlingRookSquare) {
								e.board.set(castlingSkipSquare, e.currentSide+6)
								stepScore += 50
							}

							if scanPieceType != King || e.nonPawnMaterial <= 30 {
								// no king-safety penalty
							} else {
								stepScore -= 20
							}

							if scanPieceType < 3 {
								term1 := offBoard(squareFrom-2) || e.board.at(squareFrom-2) != scanPiece
								term2 := offBoard(squareFrom+2) || e.board.at(squareFrom+2) != scanPiece
								supported := e.board.at(squareFrom^0x10) == e.currentSide+36

								stepScore -= 9*(b2i32(term1)+b2i32(term2)-1+b2i32(supported)) - (e.nonPawnMaterial >> 2)

								if (squareTo+Square(stepVector)+1)&SquareInvalid != 0 {
									stepAlpha = 647 - int32(scanPieceType)
								} else {
									stepAlpha = 2 * int32(scanPiece&Piece(squareTo+0x10)&0x20)
								}
								capturePieceValue += stepAlpha

								e.board.set(squareTo, e.board.at(squareTo)+Piece(stepAlpha))
							}

							stepScore += score + capturePieceValue
							if iterScore > alpha {
								stepAlpha = iterScore
							} else {
								stepAlpha = alpha
							}

							stepDepth = iterDepth - 1 - uint8(b2i32(iterDepth > 5 && scanPieceType > 2 && capturePiece == Empty && replayMove == 0))

							if !(e.nonPawnMaterial > 30 ||
								nullMoveScore != ScoreMax ||
								iterDepth < 3 ||
								(capturePiece != Empty && scanPieceType != King)) {
								stepDepth = iterDepth
							}

							for {
								e.currentSide ^= 0x18
								if mode == modeEnumerate || stepDepth > 2 || stepScore > stepAlpha {
									stepScoreNew = -e.search(-beta, -stepAlpha, -stepScore, castlingSkipSquare, stepDepth, modeInternal)
								} else {
									stepScoreNew = stepScore
								}
								e.currentSide ^= 0x18

								if !(stepScoreNew > alpha && stepDepth+1 < iterDepth) {
									break
								}
								stepDepth++
							}

							stepScore = stepScoreNew

							if mode == modePlay && stepScore != -ScoreMax &&
								squareFrom == e.squareFrom && squareTo == e.squareTo {
								e.score = -score - capturePieceValue
								e.enPassant = castlingSkipSquare
								e.nonPawnMaterial += capturePieceValue >> 7
								e.currentSide ^= 0x18
								return beta
							}

							e.board.set(castlingRookSquare, e.currentSide+6)
							e.board.set(castlingSkipSquare, Empty)
							e.board.set(squareTo, Empty)
							e.board.set(squareFrom, scanPiece)
							e.board.set(captureSquare, capturePiece)

							if mode == modeFindBest && stepScore != -ScoreMax &&
								squareFrom == e.squareFrom && squareTo == e.squareTo {
								return beta
							}

							if mode == modeEnumerate &&
								e.squareFrom == SquareInvalid && iterDepth == 3 && replayMove == 0 {
								move := Move{From: squareFrom, To: squareTo}
								if e.validMovesNum < len(e.validMovesBuffer) {
									e.validMovesBuffer[e.validMovesNum] = move
								}
								e.validMovesNum++
							}
						}

						if stepScore > iterScore {
							iterScore = stepScore
							iterSquareFrom = squareFrom
							iterSquareTo = squareTo | (castlingSkipSquare.invalidBit())
						}

						if replayMove != 0 {
							replayMove = 0
							goto replay
						}

						if (squareFrom+Square(stepVector))-squareTo != 0 ||
							scanPiece&Moved != 0 ||
							(scanPieceType > 2 &&
								(scanPieceType != King ||
									stepVectorIdx != 7 ||
									func() bool {
										castlingRookSquare = (squareFrom + 3) ^ Square((stepVector>>1)&0x07)
										return int32(e.board.at(castlingRookSquare))-int32(e.currentSide)-6 != 0
									}() ||
									e.board.at(castlingRookSquare^1) != Empty ||
									e.board.at(castlingRookSquare^2) != Empty)) {
							if scanPieceType < 5 {
								capturePiece = Piece(int32(capturePiece) + 1)
							}
						} else {
							castlingSkipSquare = squareTo
						}

						if capturePiece != Empty {
							break
						}
					}
				}
			}

			squareFrom = (squareFrom + 9) &^ boardMask
			if squareFrom == squareStart {
				break
			}
		}

		if iterScore == -ScoreMax && nullMoveScore != ScoreMax {
			iterScore = 0
		}
	}

	if iterScore < score {
		iterScore++
	}
	return iterScore
}

// invalidBit returns SquareInvalid if sq has the 0x80 bit set (as
// SquareInvalid itself does), 0 otherwise -- used to set a best move's
// high bit when that move is neither a pawn double step nor castling,
// mirroring "castling_skip_square & MCUMAX_SQUARE_INVALID".
func (sq Square) invalidBit() Square {
	return sq & SquareInvalid
}
