/*
Package registry manages format registration and index mapping for settingstore.

The registry system enables:
  - Decoding setting assets from several file encodings
  - Flexible DynamoDB key layouts per record type

Format Registry:
Maps file extensions to decode functions. YAML (".yaml", ".yml") and JSON (".json")
are registered by default:

	registry.RegisterFormat(".toml", func(data []byte, out any) error {
	    return toml.Unmarshal(data, out)
	})

Index Map Registry:
Associates record types with DynamoDB key templates. Types without a registration
use DefaultIndexMap:

	registry.RegisterIndexMap[colorsetting.ColorData](map[string]string{
	    "PK": "COLOR#{Path}",
	    "SK": "SLOT#{Seq}",
	})

Registrations are expected during initialization, typically in init() functions.
*/
package registry
