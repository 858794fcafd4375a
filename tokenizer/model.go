package tokenizer

import (
	"errors"
	"fmt"
	"math"
	"os"

	"google.golang.org/protobuf/encoding/protowire"
)

// PieceType mirrors ModelProto.SentencePiece.Type.
type PieceType int32

// Piece types defined by sentencepiece_model.proto.
const (
	PieceNormal      PieceType = 1
	PieceUnknown     PieceType = 2
	PieceControl     PieceType = 3
	PieceUserDefined PieceType = 4
	PieceUnused      PieceType = 5
	PieceByte        PieceType = 6
)

// Field numbers from sentencepiece_model.proto.
const (
	fieldModelPieces protowire.Number = 1

	fieldPieceText  protowire.Number = 1
	fieldPieceScore protowire.Number = 2
	fieldPieceType  protowire.Number = 3
)

var errMalformed = errors.New("malformed sentencepiece model")

// Piece is one vocabulary entry of a SentencePiece model.
type Piece struct {
	Piece string
	Score float32
	Type  PieceType
}

// Model is the vocabulary of a SentencePiece unigram model.
type Model struct {
	Pieces []Piece
}

// LoadModel reads a SentencePiece .model file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model file: %w", err)
	}
	m, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// ParseModel decodes the pieces of a serialized ModelProto. Trainer and
// normalizer specs are skipped.
func ParseModel(data []byte) (*Model, error) {
	m := &Model{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		if num == fieldModelPieces && typ == protowire.BytesType {
			raw, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
			}
			p, err := parsePiece(raw)
			if err != nil {
				return nil, err
			}
			m.Pieces = append(m.Pieces, p)
			data = data[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
		}
		data = data[n:]
	}
	if len(m.Pieces) == 0 {
		return nil, fmt.Errorf("%w: no pieces", errMalformed)
	}
	return m, nil
}

func parsePiece(data []byte) (Piece, error) {
	p := Piece{Type: PieceNormal}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Piece{}, fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldPieceText && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return Piece{}, fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
			}
			p.Piece = v
			data = data[n:]
		case num == fieldPieceScore && typ == protowire.Fixed32Type:
			v, n := protowire.ConsumeFixed32(data)
			if n < 0 {
				return Piece{}, fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
			}
			p.Score = math.Float32frombits(v)
			data = data[n:]
		case num == fieldPieceType && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return Piece{}, fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
			}
			p.Type = PieceType(v)
			data = data[n:]
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return Piece{}, fmt.Errorf("%w: %w", errMalformed, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return p, nil
}

// AppendModel serializes m in ModelProto wire format. Only pieces are
// written.
func AppendModel(b []byte, m *Model) []byte {
	for _, p := range m.Pieces {
		var piece []byte
		piece = protowire.AppendTag(piece, fieldPieceText, protowire.BytesType)
		piece = protowire.AppendString(piece, p.Piece)
		piece = protowire.AppendTag(piece, fieldPieceScore, protowire.Fixed32Type)
		piece = protowire.AppendFixed32(piece, math.Float32bits(p.Score))
		piece = protowire.AppendTag(piece, fieldPieceType, protowire.VarintType)
		piece = protowire.AppendVarint(piece, uint64(p.Type))

		b = protowire.AppendTag(b, fieldModelPieces, protowire.BytesType)
		b = protowire.AppendBytes(b, piece)
	}
	return b
}
