package params

// Key identifies a logical configuration parameter, e.g. "BITMOVIN_API_KEY".
// The same key is used across all configuration sources: as the destination
// name of a CLI flag, as a properties-file key, and as an environment
// variable name.
type Key string

// Known parameter keys consumed by the example programs.
const (
	BitmovinAPIKey     Key = "BITMOVIN_API_KEY"
	HTTPInputHost      Key = "HTTP_INPUT_HOST"
	HTTPInputFilePath  Key = "HTTP_INPUT_FILE_PATH"
	S3OutputBucketName Key = "S3_OUTPUT_BUCKET_NAME"
	S3OutputAccessKey  Key = "S3_OUTPUT_ACCESS_KEY"
	S3OutputSecretKey  Key = "S3_OUTPUT_SECRET_KEY"
	S3OutputBasePath   Key = "S3_OUTPUT_BASE_PATH"
	WatermarkImagePath Key = "WATERMARK_IMAGE_PATH"
	TextFilterText     Key = "TEXT_FILTER_TEXT"
	DRMKey             Key = "DRM_KEY"
	DRMFairplayIV      Key = "DRM_FAIRPLAY_IV"
	DRMFairplayURI     Key = "DRM_FAIRPLAY_URI"
	DRMWidevineKID     Key = "DRM_WIDEVINE_KID"
	DRMWidevinePSSH    Key = "DRM_WIDEVINE_PSSH"
)

// Spec describes a single registered parameter: the flag name it is exposed
// under on the command line, a human-readable description used for help text
// and error messages, and whether the parameter is conventionally required.
type Spec struct {
	FlagName    string
	Description string
	Required    bool
	Secret      bool
}

var registry = map[Key]Spec{
	BitmovinAPIKey: {
		FlagName:    "bitmovin-api-key",
		Description: "Your API key for the Bitmovin API.",
		Required:    true,
		Secret:      true,
	},
	HTTPInputHost: {
		FlagName:    "http-input-host",
		Description: "Hostname or IP address of the HTTP server hosting your input files, e.g.: my-storage.biz",
	},
	HTTPInputFilePath: {
		FlagName:    "http-input-file-path",
		Description: "The path to your Http input file. Example: videos/1080p_Sintel.mp4",
	},
	S3OutputBucketName: {
		FlagName:    "s3-output-bucket-name",
		Description: "The name of your S3 output bucket. Example: my-bucket-name",
	},
	S3OutputAccessKey: {
		FlagName:    "s3-output-access-key",
		Description: "The access key of your S3 output bucket.",
		Secret:      true,
	},
	S3OutputSecretKey: {
		FlagName:    "s3-output-secret-key",
		Description: "The secret key of your S3 output bucket.",
		Secret:      true,
	},
	S3OutputBasePath: {
		FlagName:    "s3-output-base-path",
		Description: "The base path on your S3 output bucket. Example: /outputs",
	},
	WatermarkImagePath: {
		FlagName:    "watermark-image-path",
		Description: "The path to the watermark image. Example: http://my-storage.biz/logo.png",
	},
	TextFilterText: {
		FlagName:    "text-filter-text",
		Description: "The text to be displayed by the text filter.",
	},
	DRMKey: {
		FlagName:    "drm-key",
		Description: "16 byte encryption key, represented as 32 hexadecimal characters Example: cab5b529ae28d5cc5e3e7bc3fd4a544d",
		Secret:      true,
	},
	DRMFairplayIV: {
		FlagName:    "drm-fairplay-iv",
		Description: "16 byte initialization vector, represented as 32 hexadecimal characters Example: 08eecef4b026deec395234d94218273d",
		Secret:      true,
	},
	DRMFairplayURI: {
		FlagName:    "drm-fairplay-uri",
		Description: "URI of the licensing server Example: skd://userspecifc?custom=information",
	},
	DRMWidevineKID: {
		FlagName:    "drm-widevine-kid",
		Description: "16 byte encryption key id, represented as 32 hexadecimal characters Example: 08eecef4b026deec395234d94218273d",
		Secret:      true,
	},
	DRMWidevinePSSH: {
		FlagName:    "drm-widevine-pssh",
		Description: "Base64 encoded PSSH payload Example: QWRvYmVhc2Rmc2FkZmFzZg==",
	},
}

// Lookup returns the Spec registered for key. The second return value
// reports whether the key is known; unknown keys may still be resolved
// through the open lookup, they just lack a registered description.
func Lookup(key Key) (Spec, bool) {
	spec, ok := registry[key]
	return spec, ok
}

// All returns a copy of the full registry. Mutating the returned map does
// not affect the registry.
func All() map[Key]Spec {
	out := make(map[Key]Spec, len(registry))
	for key, spec := range registry {
		out[key] = spec
	}
	return out
}

// Keys returns every registered parameter key in unspecified order.
func Keys() []Key {
	out := make([]Key, 0, len(registry))
	for key := range registry {
		out = append(out, key)
	}
	return out
}
