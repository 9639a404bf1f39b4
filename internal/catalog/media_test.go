package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMediaAlias(t *testing.T) {
	product := &Product{PartCode: "6204-ZZ", ImageAlias: "ball-bearing"}

	media := ResolveMedia(product, nil, &Category{Name: "Bearings"})

	assert.Equal(t, "/assets/products/ball-bearing.png", media.Image)
	assert.Equal(t, []string{media.Image}, media.Images)
}

func TestResolveMediaLinearMotionChain(t *testing.T) {
	linearMotion := &Category{Name: "Linear Motion"}

	cases := []struct {
		partCode string
		asset    string
	}{
		{"MTK-1605", "/assets/products/mtk.png"},
		{"LMK-LUU-16", "/assets/products/lmk-luu.png"},
		{"LMK-16", "/assets/products/lmk.png"},
		{"LMF-LUU-12", "/assets/products/lmf-luu.png"},
		{"LMF-12", "/assets/products/lmf.png"},
		{"LMH-LUU-20", "/assets/products/lmh-luu.png"},
		{"LMH-20", "/assets/products/lmh.png"},
		{"LMLUU-10", "/assets/products/lm-luu.png"},
		{"LM-10", "/assets/products/lm.png"},
	}

	for _, tc := range cases {
		media := ResolveMedia(&Product{PartCode: tc.partCode}, nil, linearMotion)
		assert.Equal(t, tc.asset, media.Image, "part code %s", tc.partCode)
	}
}

func TestResolveMediaCaseInsensitive(t *testing.T) {
	media := ResolveMedia(&Product{PartCode: "mtk-1605"}, nil, &Category{Name: "Linear Motion"})
	assert.Equal(t, "/assets/products/mtk.png", media.Image)
}

func TestResolveMediaOutsideLinearMotion(t *testing.T) {
	// Part-code heuristics only apply within Linear Motion
	media := ResolveMedia(&Product{PartCode: "LM-10"}, nil, &Category{Name: "Bearings"})
	assert.Equal(t, DefaultProductImage, media.Image)
}

func TestResolveMediaDefault(t *testing.T) {
	media := ResolveMedia(&Product{PartCode: "SF-12"}, nil, &Category{Name: "Linear Motion"})
	assert.Equal(t, DefaultProductImage, media.Image)

	media = ResolveMedia(nil, nil, nil)
	assert.Equal(t, DefaultProductImage, media.Image)
}
