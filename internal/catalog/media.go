package catalog

import "strings"

// Media holds the resolved representative image for a product. The catalog
// only ever resolves a single asset, so Images always has one element.
type Media struct {
	Image  string   `json:"image"`
	Images []string `json:"images"`
}

const (
	// DefaultProductImage is returned when no category-specific rule matches.
	DefaultProductImage = "/assets/products/default.png"

	linearMotionCategory = "Linear Motion"
)

// knownImageAliases maps explicit image aliases carried on raw products to
// bundled assets.
var knownImageAliases = map[string]string{
	"lm-guide":     "/assets/products/lm-guide.png",
	"ball-bearing": "/assets/products/ball-bearing.png",
	"lead-screw":   "/assets/products/lead-screw.png",
}

// linearMotionRules is the ordered part-code matcher chain for the Linear
// Motion category. More specific families must come before their generic
// prefixes ("LMK" before "LM", combined "LUU" variants before the bare
// prefix), so the first match wins.
var linearMotionRules = []struct {
	prefix   string
	contains string
	asset    string
}{
	{prefix: "MTK", asset: "/assets/products/mtk.png"},
	{prefix: "LMK", contains: "LUU", asset: "/assets/products/lmk-luu.png"},
	{prefix: "LMK", asset: "/assets/products/lmk.png"},
	{prefix: "LMF", contains: "LUU", asset: "/assets/products/lmf-luu.png"},
	{prefix: "LMF", asset: "/assets/products/lmf.png"},
	{prefix: "LMH", contains: "LUU", asset: "/assets/products/lmh-luu.png"},
	{prefix: "LMH", asset: "/assets/products/lmh.png"},
	{prefix: "LM", contains: "LUU", asset: "/assets/products/lm-luu.png"},
	{prefix: "LM", asset: "/assets/products/lm.png"},
}

// ResolveMedia maps a product and its owning part/category to a
// representative image. Explicit aliases win, then the Linear Motion
// part-code heuristics, then the default placeholder. Never fails.
func ResolveMedia(product *Product, part *Part, category *Category) Media {
	if product != nil && product.ImageAlias != "" {
		if asset, ok := knownImageAliases[product.ImageAlias]; ok {
			return mediaFor(asset)
		}
	}

	if product != nil && category != nil && category.Name == linearMotionCategory {
		code := strings.ToUpper(product.PartCode)
		for _, rule := range linearMotionRules {
			if !strings.HasPrefix(code, rule.prefix) {
				continue
			}
			if rule.contains != "" && !strings.Contains(code, rule.contains) {
				continue
			}
			return mediaFor(rule.asset)
		}
	}

	return mediaFor(DefaultProductImage)
}

func mediaFor(asset string) Media {
	return Media{Image: asset, Images: []string{asset}}
}
