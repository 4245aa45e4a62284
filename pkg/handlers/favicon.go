package handlers

// faviconICO is a 1x1 32-bit ICO, assembled by hand:
// ICONDIR + ICONDIRENTRY + BITMAPINFOHEADER + one BGRA pixel + AND mask.
var faviconICO = []byte{
	// ICONDIR: reserved, type 1 (icon), 1 image
	0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	// ICONDIRENTRY: 1x1, no palette, 1 plane, 32 bpp, 48 bytes at offset 22
	0x01, 0x01, 0x00, 0x00, 0x01, 0x00, 0x20, 0x00,
	0x30, 0x00, 0x00, 0x00, 0x16, 0x00, 0x00, 0x00,
	// BITMAPINFOHEADER: 40 bytes, 1x2 (XOR + AND rows), 1 plane, 32 bpp
	0x28, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x20, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x08, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00,
	// XOR data: one opaque blue pixel (BGRA)
	0xF4, 0x98, 0x42, 0xFF,
	// AND mask: one row, padded to 32 bits
	0x00, 0x00, 0x00, 0x00,
}
