/*
Package colorsetting resolves themed colors and their materials by ColorType.

The asset at Path holds a list of ColorData records. In YAML a color is
either a hex string or a mapping:

	records:
	  - colorType: Red
	    targetColor: "#FF0000"
	    targetColorMat: {name: mat_red, asset: Materials/Red.mat}
	  - colorType: Blue
	    targetColor: {r: 0, g: 0, b: 1}

Lookups follow the setting package policy: an unregistered type falls back to
the first record with a warning, and an empty asset yields the zero value with
an error diagnostic.

	assetstore.SetDefault(filestore.New("Resources"))
	c := colorsetting.GetColor(colorsetting.Red)
*/
package colorsetting
