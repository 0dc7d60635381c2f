package stage

import (
	"math"

	"agrifusion/domain"
	"agrifusion/internal/utils"
)

const DefaultRadius = 150

var catalog = []domain.Stage{
	{Key: "soil", Title: "Soil Testing", Description: "Soil Testing: Check pH, nutrients, and texture to prepare your land for optimal crop growth."},
	{Key: "seed", Title: "Seed Selection", Description: "Seed Selection: Choose high-quality seeds that are suitable for your soil and climate.", Redirect: "seed_selection.html"},
	{Key: "irrigation", Title: "Irrigation", Description: "Irrigation: Select the best irrigation method based on your crop and water availability.", Redirect: "irrigation.html"},
	{Key: "disease", Title: "Disease Prediction", Description: "Disease Prediction: Upload a leaf image to detect plant diseases using AI and get treatment suggestions.", Redirect: "disease.html"},
	{Key: "fertilizer", Title: "Fertilizers", Description: "Fertilizers: Apply the right type and amount of fertilizer at each growth stage."},
	{Key: "harvest", Title: "Harvesting", Description: "Harvesting: Use proper harvesting techniques to maximize yield and minimize loss."},
	{Key: "storage", Title: "Storage", Description: "Storage: Store your produce in appropriate conditions to maintain quality.", Redirect: "fertiliser.html"},
	{Key: "next", Title: "Next Crop", Description: "Next Crop: Plan crop rotation to maintain soil fertility and reduce pests.", Redirect: "next_crop.html"},
}

// Catalog returns the stages in display order.
func Catalog() []domain.Stage {
	out := make([]domain.Stage, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(key string) (domain.Stage, error) {
	for _, s := range catalog {
		if s.Key == key {
			return s, nil
		}
	}
	return domain.Stage{}, domain.ErrUnknownStage
}

// Layout spreads the catalog evenly on a circle centred in the container.
// Element i sits at angle 2πi/n; positions are top-left corners.
func Layout(req domain.LayoutRequest) ([]domain.StagePosition, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, domain.ErrInvalidLayout
	}
	radius := req.Radius
	if radius == 0 {
		radius = DefaultRadius
	}

	cx, cy := req.Width/2, req.Height/2
	n := len(catalog)
	out := make([]domain.StagePosition, n)
	for i, s := range catalog {
		angle := float64(i) / float64(n) * 2 * math.Pi
		out[i] = domain.StagePosition{
			Key:  s.Key,
			Left: cx + radius*math.Cos(angle) - req.ElementWidth/2,
			Top:  cy + radius*math.Sin(angle) - req.ElementHeight/2,
		}
	}
	return out, nil
}

// Select resolves a click on one stage. Highlighting is exclusive on the
// client: only Active is marked.
func Select(key string) (domain.StageSelection, error) {
	st, err := Lookup(key)
	if err != nil {
		return domain.StageSelection{}, err
	}
	return domain.StageSelection{Active: st.Key, Stage: st, Redirect: st.Redirect}, nil
}
