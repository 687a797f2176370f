// Package securefs provides encrypted object storage for SecureFS.
//
// This package handles the core encryption and decryption functionality:
// master key management, single-shot and chunked stream formats, and the
// name-addressed storage façade with plaintext metadata sidecars.
//
// # Encryption Architecture
//
// All data is sealed with XChaCha20-Poly1305 under a single 32-byte
// master key:
//
//  1. KeyManager loads or generates the key file and derives one AEAD
//  2. Encryptor seals whole buffers as nonce||ciphertext (the V1 format)
//  3. StreamEncryptor seals fixed-size chunks behind a version header
//     (the V2 format), so objects larger than memory stay processable
//
// The AEAD is derived once and shared; the raw key bytes are wiped from
// memory immediately after derivation.
//
// # Storage Formats
//
// V1 single-shot objects:
//
//	[24-byte nonce][ciphertext+tag]
//
// V2 chunked streams:
//
//	[version=2][flags][24-byte nonce][4-byte big-endian length][ciphertext+tag]...
//
// Every V2 chunk carries a fresh random nonce and is bound to the object
// name through the AEAD associated data. The flags byte records whether
// the writer had compression enabled; bit 0x01 is the compressed flag and
// the remaining bits are reserved, written as zero and ignored on read.
//
// A reader distinguishes the two formats by the leading byte: a V1 object
// starts with random nonce bytes, so a first byte of 2 identifies V2 with
// a 1 in 256 false-positive rate against V1 objects written before the
// header existed.
//
// # Storage Layout
//
// Objects live flat under the storage root, one file per logical name,
// with a plaintext JSON sidecar recording the original filename and
// plaintext size:
//
//	storage/report.pdf        (encrypted object)
//	storage/report.meta.json  (plaintext sidecar)
//
// Sidecars are advisory. Losing one never blocks decryption; listings
// report which objects still have theirs.
//
// # Security Considerations
//
// The key file is created with 0600 permissions and refused when it does
// not hold exactly 32 bytes. Nonces are 24 bytes from crypto/rand, which
// makes random generation safe at any realistic write volume. Compression
// happens before sealing, so compressed object sizes can leak information
// about plaintext compressibility.
package securefs
