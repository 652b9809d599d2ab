package config

import "github.com/streamforge/encoding-examples/internal/params"

// BitmovinAPIKey returns the API key for the Bitmovin API.
func (r *Resolver) BitmovinAPIKey() (string, error) {
	return r.Get(params.BitmovinAPIKey)
}

// HTTPInputHost returns the hostname or IP address of the HTTP server
// hosting the input files.
func (r *Resolver) HTTPInputHost() (string, error) {
	return r.Get(params.HTTPInputHost)
}

// HTTPInputFilePath returns the path to the HTTP input file.
func (r *Resolver) HTTPInputFilePath() (string, error) {
	return r.Get(params.HTTPInputFilePath)
}

// S3OutputBucketName returns the name of the S3 output bucket.
func (r *Resolver) S3OutputBucketName() (string, error) {
	return r.Get(params.S3OutputBucketName)
}

// S3OutputAccessKey returns the access key of the S3 output bucket.
func (r *Resolver) S3OutputAccessKey() (string, error) {
	return r.Get(params.S3OutputAccessKey)
}

// S3OutputSecretKey returns the secret key of the S3 output bucket.
func (r *Resolver) S3OutputSecretKey() (string, error) {
	return r.Get(params.S3OutputSecretKey)
}

// S3OutputBasePath returns the base path on the S3 output bucket, normalized
// into path-prefix form: no leading '/', exactly one trailing '/'.
func (r *Resolver) S3OutputBasePath() (string, error) {
	value, err := r.Get(params.S3OutputBasePath)
	if err != nil {
		return "", err
	}
	return normalizeBasePath(value), nil
}

// WatermarkImagePath returns the path to the watermark image.
func (r *Resolver) WatermarkImagePath() (string, error) {
	return r.Get(params.WatermarkImagePath)
}

// TextFilterText returns the text displayed by the text filter.
func (r *Resolver) TextFilterText() (string, error) {
	return r.Get(params.TextFilterText)
}

// DRMKey returns the 16 byte DRM encryption key as 32 hexadecimal characters.
func (r *Resolver) DRMKey() (string, error) {
	return r.Get(params.DRMKey)
}

// DRMFairplayIV returns the 16 byte FairPlay initialization vector as 32
// hexadecimal characters.
func (r *Resolver) DRMFairplayIV() (string, error) {
	return r.Get(params.DRMFairplayIV)
}

// DRMFairplayURI returns the URI of the FairPlay licensing server.
func (r *Resolver) DRMFairplayURI() (string, error) {
	return r.Get(params.DRMFairplayURI)
}

// DRMWidevineKID returns the 16 byte Widevine key id as 32 hexadecimal
// characters.
func (r *Resolver) DRMWidevineKID() (string, error) {
	return r.Get(params.DRMWidevineKID)
}

// DRMWidevinePSSH returns the base64 encoded Widevine PSSH payload.
func (r *Resolver) DRMWidevinePSSH() (string, error) {
	return r.Get(params.DRMWidevinePSSH)
}
