package detect

// LabelDetectionResponse is the detection API payload: zero or more
// center-coordinate boxes with confidences.
type LabelDetectionResponse struct {
	Predictions []Prediction `json:"predictions"`
	Image       *ImageInfo   `json:"image,omitempty"`
}

type Prediction struct {
	X           float32 `json:"x"`
	Y           float32 `json:"y"`
	Width       float32 `json:"width"`
	Height      float32 `json:"height"`
	Confidence  float32 `json:"confidence"`
	Class       string  `json:"class"`
	ClassID     *int    `json:"class_id,omitempty"`
	DetectionID *string `json:"detection_id,omitempty"`
}

type ImageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// BoundingBox converts the center-based prediction to corner coordinates.
func (p Prediction) BoundingBox() BoundingBox {
	halfWidth := p.Width / 2
	halfHeight := p.Height / 2
	return BoundingBox{
		X1: p.X - halfWidth,
		Y1: p.Y - halfHeight,
		X2: p.X + halfWidth,
		Y2: p.Y + halfHeight,
	}
}

type BoundingBox struct {
	X1 float32
	Y1 float32
	X2 float32
	Y2 float32
}

func (b BoundingBox) IsValid() bool {
	return b.X1 >= 0 && b.Y1 >= 0 && b.X2 > b.X1 && b.Y2 > b.Y1
}

// ClampToImage limits the box to the image dimensions.
func (b BoundingBox) ClampToImage(imageWidth, imageHeight int) BoundingBox {
	return BoundingBox{
		X1: clamp(b.X1, 0, float32(imageWidth)),
		Y1: clamp(b.Y1, 0, float32(imageHeight)),
		X2: clamp(b.X2, 0, float32(imageWidth)),
		Y2: clamp(b.Y2, 0, float32(imageHeight)),
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
