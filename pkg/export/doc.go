// Package export serializes generated scales to CSV and JSON.
//
// # CSV Format
//
// One row per tick mark with a fixed header:
//
//	value,normalizedPosition,absolutePosition,tickLength,label
//
// normalizedPosition is the 0..1 coordinate along the scale,
// absolutePosition is that coordinate scaled to the physical extent in
// points, and tickLength is the style's relative length (1.0 for major
// ticks down to 0.25 for tiny ones). The label column is empty for
// unlabeled ticks.
//
// # JSON Format
//
// One object per scale:
//
//	{
//	  "name": "C",
//	  "beginValue": 1,
//	  "endValue": 10,
//	  "scaleLengthInPoints": 250,
//	  "tickMarks": [
//	    {"value": 1, "position": 0, "style": "major", "label": "1"},
//	    ...
//	  ]
//	}
//
// The JSON form is lossless over the tick list: [ReadJSON] re-imports what
// [WriteJSON] produced, so generated scales can be cached, diffed, or fed
// to external drawing tools and read back identically.
package export
