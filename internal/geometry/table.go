// Package geometry holds the piece footprints and resolves them for a given
// orientation.
package geometry

import "svw.info/steps/internal/domain"

// baseStates lists the raw footprint of every shape: index 2*shape is the
// primary side (orientation A), 2*shape+1 the mirrored side (orientation E).
// 0 is no ring, 1 a bottom ring, 2 an upper ring.
var baseStates = [2 * domain.ShapeCount]string{
	"120212100", "012121002", // A
	"020012021", "010120210", // B
	"020012120", "010120012", // C
	"020210021", "010021210", // D
	"020210120", "010021012", // E
	"001012120", "200120012", // F
	"021012120", "210120012", // G
	"021210021", "210021210", // H
}

// BaseState returns the raw footprint for a shape and mirror group.
func BaseState(s domain.Shape, mirrored bool) string {
	i := 2 * int(s)
	if mirrored {
		i++
	}
	return baseStates[i]
}

var footprints [domain.ShapeCount][8]Mask

func init() {
	for s := 0; s < domain.ShapeCount; s++ {
		for o := 0; o < 8; o++ {
			raw := BaseState(domain.Shape(s), o >= 4)
			m, err := ParseMask(ExactState(raw, o))
			if err != nil {
				panic(err)
			}
			footprints[s][o] = m
		}
	}
}

// Footprint returns the resolved mask of a shape in an orientation.
func Footprint(s domain.Shape, o domain.Orientation) Mask {
	return footprints[s][o]
}

// Of is Footprint for a decoded piece.
func Of(p domain.Piece) Mask { return footprints[p.Shape][p.Orientation] }
