// Copyright 2025 NetApp, Inc. All Rights Reserved.

package vnx

import (
	"math/rand/v2"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/netapp/vnx-blockdevice/storage_drivers/vnx/api"
	"github.com/netapp/vnx-blockdevice/utils/errors"
)

// Picker selects one HLU from a non-empty, ascending list of free HLUs.
type Picker interface {
	Pick(free []int) int
}

// PickerFunc adapts a function to the Picker interface.
type PickerFunc func(free []int) int

func (f PickerFunc) Pick(free []int) int {
	return f(free)
}

// RandomPicker chooses uniformly among the free HLUs, so that hosts racing to mask LUNs into the
// same group rarely pick the same slot.
type RandomPicker struct {
	mutex sync.Mutex
	rand  *rand.Rand
}

func NewRandomPicker() *RandomPicker {
	return &RandomPicker{rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeededRandomPicker returns a RandomPicker with a reproducible sequence.
func NewSeededRandomPicker(seed uint64) *RandomPicker {
	return &RandomPicker{rand: rand.New(rand.NewPCG(seed, seed))}
}

func (p *RandomPicker) Pick(free []int) int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return free[p.rand.IntN(len(free))]
}

// FirstFitPicker always chooses the lowest free HLU.
var FirstFitPicker = PickerFunc(func(free []int) int { return free[0] })

// HLUAllocator chooses an unused host LUN number within a storage group.
type HLUAllocator struct {
	picker Picker
}

func NewHLUAllocator(picker Picker) *HLUAllocator {
	if picker == nil {
		picker = NewRandomPicker()
	}
	return &HLUAllocator{picker: picker}
}

// FreeHLUs returns the HLUs in [MinHLU, MaxHLU] that the group does not use.
func FreeHLUs(group *api.StorageGroup) *roaring.Bitmap {
	free := roaring.New()
	free.AddRange(api.MinHLU, api.MaxHLU+1)
	for _, hlu := range group.UsedHLUs() {
		if hlu >= api.MinHLU && hlu <= api.MaxHLU {
			free.Remove(uint32(hlu))
		}
	}
	return free
}

// ChooseHLU returns an HLU not currently used in the group, or a StorageGroupExhaustedError.
func (a *HLUAllocator) ChooseHLU(group *api.StorageGroup) (int, error) {
	free := FreeHLUs(group)
	if free.IsEmpty() {
		return 0, errors.StorageGroupExhaustedError(group.Name)
	}

	candidates := make([]int, 0, free.GetCardinality())
	iterator := free.Iterator()
	for iterator.HasNext() {
		candidates = append(candidates, int(iterator.Next()))
	}

	hlu := a.picker.Pick(candidates)
	if hlu < 0 || hlu > api.MaxHLU || !free.Contains(uint32(hlu)) {
		return 0, errors.New("HLU picker returned an HLU that is not free")
	}
	return hlu, nil
}
