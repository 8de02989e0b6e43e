package mdec

// AC codebook, MPEG-1 dct_coeff_next as used by the MDEC.
//
// Entries pack (bits<<16)|(run<<10)|(level&0x3FF); bits include the sign bit.
// vlcFast is indexed by the top five bits of the window when its top nibble
// is at least 4. The class tables are indexed by the bits that follow a run
// of leading zeros, see lengthClasses.

var vlcFast = [24]uint32{
	0x00050002, 0x000503fe, 0x00050801, 0x00050bff,
	0x00040401, 0x00040401, 0x000407ff, 0x000407ff,
	0x0002fe00, 0x0002fe00, 0x0002fe00, 0x0002fe00,
	0x0002fe00, 0x0002fe00, 0x0002fe00, 0x0002fe00,
	0x00030001, 0x00030001, 0x00030001, 0x00030001,
	0x000303ff, 0x000303ff, 0x000303ff, 0x000303ff,
}

var vlcClass0 = [120]uint32{
	0x00060200, 0x00060200, 0x00060200, 0x00060200,
	0x00060200, 0x00060200, 0x00060200, 0x00060200,
	0x00080802, 0x00080802, 0x00080bfe, 0x00080bfe,
	0x00082401, 0x00082401, 0x000827ff, 0x000827ff,
	0x00080004, 0x00080004, 0x000803fc, 0x000803fc,
	0x00082001, 0x00082001, 0x000823ff, 0x000823ff,
	0x00071c01, 0x00071c01, 0x00071c01, 0x00071c01,
	0x00071fff, 0x00071fff, 0x00071fff, 0x00071fff,
	0x00071801, 0x00071801, 0x00071801, 0x00071801,
	0x00071bff, 0x00071bff, 0x00071bff, 0x00071bff,
	0x00070402, 0x00070402, 0x00070402, 0x00070402,
	0x000707fe, 0x000707fe, 0x000707fe, 0x000707fe,
	0x00071401, 0x00071401, 0x00071401, 0x00071401,
	0x000717ff, 0x000717ff, 0x000717ff, 0x000717ff,
	0x00093401, 0x000937ff, 0x00090006, 0x000903fa,
	0x00093001, 0x000933ff, 0x00092c01, 0x00092fff,
	0x00090c02, 0x00090ffe, 0x00090403, 0x000907fd,
	0x00090005, 0x000903fb, 0x00092801, 0x00092bff,
	0x00060003, 0x00060003, 0x00060003, 0x00060003,
	0x00060003, 0x00060003, 0x00060003, 0x00060003,
	0x000603fd, 0x000603fd, 0x000603fd, 0x000603fd,
	0x000603fd, 0x000603fd, 0x000603fd, 0x000603fd,
	0x00061001, 0x00061001, 0x00061001, 0x00061001,
	0x00061001, 0x00061001, 0x00061001, 0x00061001,
	0x000613ff, 0x000613ff, 0x000613ff, 0x000613ff,
	0x000613ff, 0x000613ff, 0x000613ff, 0x000613ff,
	0x00060c01, 0x00060c01, 0x00060c01, 0x00060c01,
	0x00060c01, 0x00060c01, 0x00060c01, 0x00060c01,
	0x00060fff, 0x00060fff, 0x00060fff, 0x00060fff,
	0x00060fff, 0x00060fff, 0x00060fff, 0x00060fff,
}

var vlcClass1 = [16]uint32{
	0x000b4001, 0x000b43ff, 0x000b1402, 0x000b17fe,
	0x000b0007, 0x000b03f9, 0x000b0803, 0x000b0bfd,
	0x000b0404, 0x000b07fc, 0x000b3c01, 0x000b3fff,
	0x000b3801, 0x000b3bff, 0x000b1002, 0x000b13fe,
}

var vlcClass2 = [32]uint32{
	0x000d000b, 0x000d03f5, 0x000d2002, 0x000d23fe,
	0x000d1003, 0x000d13fd, 0x000d000a, 0x000d03f6,
	0x000d0804, 0x000d0bfc, 0x000d1c02, 0x000d1ffe,
	0x000d5401, 0x000d57ff, 0x000d5001, 0x000d53ff,
	0x000d0009, 0x000d03f7, 0x000d4c01, 0x000d4fff,
	0x000d4801, 0x000d4bff, 0x000d0405, 0x000d07fb,
	0x000d0c03, 0x000d0ffd, 0x000d0008, 0x000d03f8,
	0x000d1802, 0x000d1bfe, 0x000d4401, 0x000d47ff,
}

var vlcClass3 = [32]uint32{
	0x000e2802, 0x000e2bfe, 0x000e2402, 0x000e27fe,
	0x000e1403, 0x000e17fd, 0x000e0c04, 0x000e0ffc,
	0x000e0805, 0x000e0bfb, 0x000e0407, 0x000e07f9,
	0x000e0406, 0x000e07fa, 0x000e000f, 0x000e03f1,
	0x000e000e, 0x000e03f2, 0x000e000d, 0x000e03f3,
	0x000e000c, 0x000e03f4, 0x000e6801, 0x000e6bff,
	0x000e6401, 0x000e67ff, 0x000e6001, 0x000e63ff,
	0x000e5c01, 0x000e5fff, 0x000e5801, 0x000e5bff,
}

var vlcClass4 = [32]uint32{
	0x000f001f, 0x000f03e1, 0x000f001e, 0x000f03e2,
	0x000f001d, 0x000f03e3, 0x000f001c, 0x000f03e4,
	0x000f001b, 0x000f03e5, 0x000f001a, 0x000f03e6,
	0x000f0019, 0x000f03e7, 0x000f0018, 0x000f03e8,
	0x000f0017, 0x000f03e9, 0x000f0016, 0x000f03ea,
	0x000f0015, 0x000f03eb, 0x000f0014, 0x000f03ec,
	0x000f0013, 0x000f03ed, 0x000f0012, 0x000f03ee,
	0x000f0011, 0x000f03ef, 0x000f0010, 0x000f03f0,
}

var vlcClass5 = [32]uint32{
	0x00100028, 0x001003d8, 0x00100027, 0x001003d9,
	0x00100026, 0x001003da, 0x00100025, 0x001003db,
	0x00100024, 0x001003dc, 0x00100023, 0x001003dd,
	0x00100022, 0x001003de, 0x00100021, 0x001003df,
	0x00100020, 0x001003e0, 0x0010040e, 0x001007f2,
	0x0010040d, 0x001007f3, 0x0010040c, 0x001007f4,
	0x0010040b, 0x001007f5, 0x0010040a, 0x001007f6,
	0x00100409, 0x001007f7, 0x00100408, 0x001007f8,
}

var vlcClass6 = [32]uint32{
	0x00110412, 0x001107ee, 0x00110411, 0x001107ef,
	0x00110410, 0x001107f0, 0x0011040f, 0x001107f1,
	0x00111803, 0x00111bfd, 0x00114002, 0x001143fe,
	0x00113c02, 0x00113ffe, 0x00113802, 0x00113bfe,
	0x00113402, 0x001137fe, 0x00113002, 0x001133fe,
	0x00112c02, 0x00112ffe, 0x00117c01, 0x00117fff,
	0x00117801, 0x00117bff, 0x00117401, 0x001177ff,
	0x00117001, 0x001173ff, 0x00116c01, 0x00116fff,
}
