package sdlui

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/BrandonKowalski/navigator/pkg/navigator/internal"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const defaultMaxCacheSize = 64

// TextureCache keeps rendered text and icon textures between frames.
// Evicted textures are destroyed.
type TextureCache struct {
	renderer *sdl.Renderer
	textures *internal.LRU[*sdl.Texture]
}

func NewTextureCache(renderer *sdl.Renderer) *TextureCache {
	return NewTextureCacheWithSize(renderer, defaultMaxCacheSize)
}

func NewTextureCacheWithSize(renderer *sdl.Renderer, maxSize int) *TextureCache {
	return &TextureCache{
		renderer: renderer,
		textures: internal.NewLRU(maxSize, func(_ string, texture *sdl.Texture) {
			texture.Destroy()
		}),
	}
}

// Text returns a texture of text drawn with font in a 0xRRGGBB color.
// Empty text yields a nil texture and zero size.
func (c *TextureCache) Text(font *ttf.Font, text string, color uint32) (*sdl.Texture, internal.Size, error) {
	if text == "" {
		return nil, internal.Size{}, nil
	}

	key := fmt.Sprintf("text|%p|%06x|%s", font, color, text)
	if texture, ok := c.textures.Get(key); ok {
		return texture, textureSize(texture), nil
	}

	r, g, b, a := internal.HexToRGBA(color)
	surface, err := font.RenderUTF8Blended(text, sdl.Color{R: r, G: g, B: b, A: a})
	if err != nil {
		return nil, internal.Size{}, err
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, internal.Size{}, err
	}

	c.textures.Set(key, texture)
	return texture, internal.Size{W: surface.W, H: surface.H}, nil
}

// Icon returns a size x size texture of icon.
func (c *TextureCache) Icon(icon internal.Icon, size int32) (*sdl.Texture, error) {
	key := fmt.Sprintf("icon|%d|%d", icon, size)
	if texture, ok := c.textures.Get(key); ok {
		return texture, nil
	}

	rgba, err := internal.RasterizeIcon(icon, int(size))
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(rgba.Rect.Dx()),
		int32(rgba.Rect.Dy()),
		32,
		int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	runtime.KeepAlive(rgba)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)

	c.textures.Set(key, texture)
	return texture, nil
}

func (c *TextureCache) Destroy() {
	c.textures.Purge()
}

func textureSize(texture *sdl.Texture) internal.Size {
	_, _, w, h, err := texture.Query()
	if err != nil {
		return internal.Size{}
	}
	return internal.Size{W: w, H: h}
}
