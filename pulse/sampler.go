package pulse

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

// SamplerCache shares samplers between everyone asking for the same description.
type SamplerCache struct {
	device *wgpu.Device
	cache  *lru.Cache[wgpu.SamplerDescriptor, *wgpu.Sampler]
}

func newSamplerCache(device *wgpu.Device) *SamplerCache {
	// only fails for a non positive size
	cache, _ := lru.NewWithEvict(16, func(_ wgpu.SamplerDescriptor, sampler *wgpu.Sampler) {
		sampler.Release()
	})

	return &SamplerCache{device: device, cache: cache}
}

// Get returns a sampler matching the description. The sampler is owned by
// the cache, you must not call wgpu.Sampler.Release() on it.
func (c *SamplerCache) Get(desc wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
	if sampler, ok := c.cache.Get(desc); ok {
		return sampler, nil
	}

	sampler, err := c.device.CreateSampler(&desc)
	if err != nil {
		return nil, fmt.Errorf("create sampler %q: %w", desc.Label, err)
	}

	c.cache.Add(desc, sampler)

	return sampler, nil
}

// Release releases all cached samplers.
func (c *SamplerCache) Release() {
	c.cache.Purge()
}
