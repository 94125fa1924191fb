package game

import "github.com/KirkDiggler/liarsdice/internal/models"

// ValidateBid reports whether proposed may follow current. A nil error means
// the raise is legal; otherwise the error names the first rule broken.
//
// A higher face is a legal raise whatever its total. At the same face the
// total must strictly increase. Once current is the maximum bid nothing
// more can be raised and the only move left is a challenge.
func ValidateBid(current, proposed models.Bid, dieFaces, maxTotal int) error {
	if current.Face == dieFaces && current.Total == maxTotal {
		return ErrAlreadyAtMaximum
	}

	if proposed.Face < 1 || proposed.Face > dieFaces {
		return ErrInvalidFace
	}

	if proposed.Face < current.Face {
		return ErrFaceMustNotDecrease
	}

	if proposed.Face == current.Face && proposed.Total <= current.Total {
		return ErrTotalMustIncrease
	}

	if proposed.Total < 0 || proposed.Total > maxTotal {
		return ErrInvalidTotal
	}

	return nil
}
