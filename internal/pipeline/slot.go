package pipeline

import "fmt"

// SlotKind names one logical image position within a template.
type SlotKind int

const (
	SlotHead SlotKind = iota
	SlotTitleBackground
	SlotItemImage
	SlotItemSecondImage
	SlotExtra
)

// Slot identifies an image position. Index is meaningful for item slots,
// Key for extra slots picked up at the transport boundary.
type Slot struct {
	Kind  SlotKind
	Index int
	Key   string
}

func HeadSlot() Slot                { return Slot{Kind: SlotHead} }
func TitleBackgroundSlot() Slot     { return Slot{Kind: SlotTitleBackground} }
func ItemImageSlot(i int) Slot      { return Slot{Kind: SlotItemImage, Index: i} }
func ItemSecondImageSlot(i int) Slot { return Slot{Kind: SlotItemSecondImage, Index: i} }
func ExtraSlot(key string) Slot     { return Slot{Kind: SlotExtra, Key: key} }

// String renders the legacy wire keys the console logs and error messages
// have always used.
func (s Slot) String() string {
	switch s.Kind {
	case SlotHead:
		return "head"
	case SlotTitleBackground:
		return "titleBackground"
	case SlotItemImage:
		return fmt.Sprintf("templateImage:%d", s.Index)
	case SlotItemSecondImage:
		return fmt.Sprintf("templateSecondImage:%d", s.Index)
	case SlotExtra:
		return "extra:" + s.Key
	}
	return "unknown"
}
