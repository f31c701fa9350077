package scenes

import (
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/gonewx/kokaton/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// Sprite wraps an ebiten.Image so it can travel through the core as a types.Sprite.
type Sprite struct {
	Image *ebiten.Image
}

// Size implements types.Sprite.
func (s *Sprite) Size() (int, int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// ResourceManager is the ebiten asset collaborator.
// It resolves image names to drawable sprites, caching both the decoded base images
// and every derived variant (flipped, hyper-filtered) so each is built only once.
//
// Images are looked up as "<name>.png" inside the provided file system, which is either
// the embedded assets/fig directory or an os.DirFS given by the -assets flag.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All sprites are resolved during startup
// and from the ebiten Update goroutine only.
type ResourceManager struct {
	fsys        fs.FS
	imageCache  map[string]*ebiten.Image    // Cache for decoded images: name -> Image
	spriteCache map[types.SpriteKey]*Sprite // Cache for derived sprites
}

// NewResourceManager creates a ResourceManager reading images from fsys.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:        fsys,
		imageCache:  make(map[string]*ebiten.Image),
		spriteCache: make(map[types.SpriteKey]*Sprite),
	}
}

// LoadImage loads and caches the base image for an identifier such as "3" or "star".
//
// Returns:
//   - A pointer to the loaded ebiten.Image.
//   - An error if the file cannot be opened or decoded. Does not panic.
func (rm *ResourceManager) LoadImage(name string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[name]; exists {
		return cachedImage, nil
	}

	file := name
	if path.Ext(file) == "" {
		file += ".png"
	}

	f, err := rm.fsys.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", file, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", file, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[name] = ebitenImg

	log.Printf("[ResourceManager] 加载图像 %s (%dx%d)", file, img.Bounds().Dx(), img.Bounds().Dy())
	return ebitenImg, nil
}

// LoadSprite implements types.SpriteLoader.
// The flip is applied before the hyper filter; both variants are cached by key.
func (rm *ResourceManager) LoadSprite(key types.SpriteKey) (types.Sprite, error) {
	if cached, exists := rm.spriteCache[key]; exists {
		return cached, nil
	}

	img, err := rm.LoadImage(key.Name)
	if err != nil {
		return nil, err
	}

	if key.FlipX {
		img = flipHorizontal(img)
	}
	if key.Hyper {
		img = hyperFilter(img)
	}

	sprite := &Sprite{Image: img}
	rm.spriteCache[key] = sprite
	return sprite, nil
}

func flipHorizontal(src *ebiten.Image) *ebiten.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := ebiten.NewImage(w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(-1, 1)
	op.GeoM.Translate(float64(w), 0)
	dst.DrawImage(src, op)
	return dst
}

// hyperColorM 反色矩阵：RGB 取反，透明度不变
func hyperColorM() colorm.ColorM {
	var cm colorm.ColorM
	cm.Scale(-1, -1, -1, 1)
	cm.Translate(1, 1, 1, 0)
	return cm
}

// hyperFilter 用 hyperColorM 生成 hyper 版本的图像
func hyperFilter(src *ebiten.Image) *ebiten.Image {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	dst := ebiten.NewImage(w, h)
	colorm.DrawImage(dst, src, hyperColorM(), &colorm.DrawImageOptions{})
	return dst
}
