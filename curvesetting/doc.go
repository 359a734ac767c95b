/*
Package curvesetting resolves shared animation curves by CurveType.

Curves are cubic Hermite splines over keyframes with per-key in and out
tangents. Outside the key range PreWrap and PostWrap decide between clamping,
looping and ping-ponging.

	records:
	  - curveType: EaseInOut
	    curve:
	      keys:
	        - {time: 0, value: 0}
	        - {time: 1, value: 1}
	      postWrap: pingPong

	v := curvesetting.Evaluate(curvesetting.EaseInOut, 0.25)
*/
package curvesetting
