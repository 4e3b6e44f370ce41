package lindng

import "fmt"

// TagID identifies an IFD entry.
type TagID uint16

// TIFF 6.0 baseline and extension tags.
const (
	NewSubfileType            TagID = 0x00FE
	SubfileType               TagID = 0x00FF
	ImageWidth                TagID = 0x0100
	ImageLength               TagID = 0x0101
	BitsPerSample             TagID = 0x0102
	Compression               TagID = 0x0103
	PhotometricInterpretation TagID = 0x0106
	FillOrder                 TagID = 0x010A
	DocumentName              TagID = 0x010D
	ImageDescription          TagID = 0x010E
	Make                      TagID = 0x010F
	Model                     TagID = 0x0110
	StripOffsets              TagID = 0x0111
	Orientation               TagID = 0x0112
	SamplesPerPixel           TagID = 0x0115
	RowsPerStrip              TagID = 0x0116
	StripByteCounts           TagID = 0x0117
	MinSampleValue            TagID = 0x0118
	MaxSampleValue            TagID = 0x0119
	XResolution               TagID = 0x011A
	YResolution               TagID = 0x011B
	PlanarConfiguration       TagID = 0x011C
	ResolutionUnit            TagID = 0x0128
	PageNumber                TagID = 0x0129
	TransferFunction          TagID = 0x012D
	Software                  TagID = 0x0131
	DateTime                  TagID = 0x0132
	Artist                    TagID = 0x013B
	HostComputer              TagID = 0x013C
	Predictor                 TagID = 0x013D
	WhitePoint                TagID = 0x013E
	PrimaryChromaticities     TagID = 0x013F
	ColorMap                  TagID = 0x0140
	TileWidth                 TagID = 0x0142
	TileLength                TagID = 0x0143
	TileOffsets               TagID = 0x0144
	TileByteCounts            TagID = 0x0145
	SubIFDs                   TagID = 0x014A
	ExtraSamples              TagID = 0x0152
	SampleFormat              TagID = 0x0153
	SMinSampleValue           TagID = 0x0154
	SMaxSampleValue           TagID = 0x0155
	JPEGTables                TagID = 0x015B
	YCbCrCoefficients         TagID = 0x0211
	YCbCrSubSampling          TagID = 0x0212
	YCbCrPositioning          TagID = 0x0213
	ReferenceBlackWhite       TagID = 0x0214
	XMP                       TagID = 0x02BC
	Copyright                 TagID = 0x8298
	IPTC                      TagID = 0x83BB
	ExifIFD                   TagID = 0x8769
	ICCProfile                TagID = 0x8773
	GPSIFD                    TagID = 0x8825
	InteropIFD                TagID = 0xA005
)

// TIFF/EP tags.
const (
	CFARepeatPatternDim TagID = 0x828D
	CFAPattern          TagID = 0x828E
	ImageNumber         TagID = 0x9211
	TIFFEPStandardID    TagID = 0x9216
)

// DNG 1.4 tags.
const (
	DNGVersion                  TagID = 50706
	DNGBackwardVersion          TagID = 50707
	UniqueCameraModel           TagID = 50708
	LocalizedCameraModel        TagID = 50709
	CFAPlaneColor               TagID = 50710
	CFALayout                   TagID = 50711
	LinearizationTable          TagID = 50712
	BlackLevelRepeatDim         TagID = 50713
	BlackLevel                  TagID = 50714
	BlackLevelDeltaH            TagID = 50715
	BlackLevelDeltaV            TagID = 50716
	WhiteLevel                  TagID = 50717
	DefaultScale                TagID = 50718
	DefaultCropOrigin           TagID = 50719
	DefaultCropSize             TagID = 50720
	ColorMatrix1                TagID = 50721
	ColorMatrix2                TagID = 50722
	CameraCalibration1          TagID = 50723
	CameraCalibration2          TagID = 50724
	ReductionMatrix1            TagID = 50725
	ReductionMatrix2            TagID = 50726
	AnalogBalance               TagID = 50727
	AsShotNeutral               TagID = 50728
	AsShotWhiteXY               TagID = 50729
	BaselineExposure            TagID = 50730
	BaselineNoise               TagID = 50731
	BaselineSharpness           TagID = 50732
	BayerGreenSplit             TagID = 50733
	LinearResponseLimit         TagID = 50734
	CameraSerialNumber          TagID = 50735
	LensInfo                    TagID = 50736
	ChromaBlurRadius            TagID = 50737
	AntiAliasStrength           TagID = 50738
	ShadowScale                 TagID = 50739
	DNGPrivateData              TagID = 50740
	MakerNoteSafety             TagID = 50741
	CalibrationIlluminant1      TagID = 50778
	CalibrationIlluminant2      TagID = 50779
	BestQualityScale            TagID = 50780
	RawDataUniqueID             TagID = 50781
	OriginalRawFileName         TagID = 50827
	OriginalRawFileData         TagID = 50828
	ActiveArea                  TagID = 50829
	MaskedAreas                 TagID = 50830
	AsShotICCProfile            TagID = 50831
	AsShotPreProfileMatrix      TagID = 50832
	CurrentICCProfile           TagID = 50833
	CurrentPreProfileMatrix     TagID = 50834
	ColorimetricReference       TagID = 50879
	CameraCalibrationSignature  TagID = 50931
	ProfileCalibrationSignature TagID = 50932
	AsShotProfileName           TagID = 50934
	NoiseReductionApplied       TagID = 50935
	ProfileName                 TagID = 50936
	ProfileHueSatMapDims        TagID = 50937
	ProfileHueSatMapData1       TagID = 50938
	ProfileHueSatMapData2       TagID = 50939
	ProfileToneCurve            TagID = 50940
	ProfileEmbedPolicy          TagID = 50941
	ProfileCopyright            TagID = 50942
	ForwardMatrix1              TagID = 50964
	ForwardMatrix2              TagID = 50965
	PreviewApplicationName      TagID = 50966
	PreviewApplicationVersion   TagID = 50967
	PreviewSettingsName         TagID = 50968
	PreviewSettingsDigest       TagID = 50969
	PreviewColorSpace           TagID = 50970
	PreviewDateTime             TagID = 50971
	RawImageDigest              TagID = 50972
	OriginalRawFileDigest       TagID = 50973
	SubTileBlockSize            TagID = 50974
	RowInterleaveFactor         TagID = 50975
	ProfileLookTableDims        TagID = 50981
	ProfileLookTableData        TagID = 50982
	OpcodeList1                 TagID = 51008
	OpcodeList2                 TagID = 51009
	OpcodeList3                 TagID = 51022
	NoiseProfile                TagID = 51041
)

// Mappings from tags to names. Ids missing here are still parsed; they are
// printed as Tag(0x....).
var tagNames = map[TagID]string{
	NewSubfileType:              "NewSubfileType",
	SubfileType:                 "SubfileType",
	ImageWidth:                  "ImageWidth",
	ImageLength:                 "ImageLength",
	BitsPerSample:               "BitsPerSample",
	Compression:                 "Compression",
	PhotometricInterpretation:   "PhotometricInterpretation",
	FillOrder:                   "FillOrder",
	DocumentName:                "DocumentName",
	ImageDescription:            "ImageDescription",
	Make:                        "Make",
	Model:                       "Model",
	StripOffsets:                "StripOffsets",
	Orientation:                 "Orientation",
	SamplesPerPixel:             "SamplesPerPixel",
	RowsPerStrip:                "RowsPerStrip",
	StripByteCounts:             "StripByteCounts",
	MinSampleValue:              "MinSampleValue",
	MaxSampleValue:              "MaxSampleValue",
	XResolution:                 "XResolution",
	YResolution:                 "YResolution",
	PlanarConfiguration:         "PlanarConfiguration",
	ResolutionUnit:              "ResolutionUnit",
	PageNumber:                  "PageNumber",
	TransferFunction:            "TransferFunction",
	Software:                    "Software",
	DateTime:                    "DateTime",
	Artist:                      "Artist",
	HostComputer:                "HostComputer",
	Predictor:                   "Predictor",
	WhitePoint:                  "WhitePoint",
	PrimaryChromaticities:       "PrimaryChromaticities",
	ColorMap:                    "ColorMap",
	TileWidth:                   "TileWidth",
	TileLength:                  "TileLength",
	TileOffsets:                 "TileOffsets",
	TileByteCounts:              "TileByteCounts",
	SubIFDs:                     "SubIFDs",
	ExtraSamples:                "ExtraSamples",
	SampleFormat:                "SampleFormat",
	SMinSampleValue:             "SMinSampleValue",
	SMaxSampleValue:             "SMaxSampleValue",
	JPEGTables:                  "JPEGTables",
	YCbCrCoefficients:           "YCbCrCoefficients",
	YCbCrSubSampling:            "YCbCrSubSampling",
	YCbCrPositioning:            "YCbCrPositioning",
	ReferenceBlackWhite:         "ReferenceBlackWhite",
	XMP:                         "XMP",
	Copyright:                   "Copyright",
	IPTC:                        "IPTC",
	ExifIFD:                     "ExifIFD",
	ICCProfile:                  "ICCProfile",
	GPSIFD:                      "GPSIFD",
	InteropIFD:                  "InteropIFD",
	CFARepeatPatternDim:         "CFARepeatPatternDim",
	CFAPattern:                  "CFAPattern",
	ImageNumber:                 "ImageNumber",
	TIFFEPStandardID:            "TIFFEPStandardID",
	DNGVersion:                  "DNGVersion",
	DNGBackwardVersion:          "DNGBackwardVersion",
	UniqueCameraModel:           "UniqueCameraModel",
	LocalizedCameraModel:        "LocalizedCameraModel",
	CFAPlaneColor:               "CFAPlaneColor",
	CFALayout:                   "CFALayout",
	LinearizationTable:          "LinearizationTable",
	BlackLevelRepeatDim:         "BlackLevelRepeatDim",
	BlackLevel:                  "BlackLevel",
	BlackLevelDeltaH:            "BlackLevelDeltaH",
	BlackLevelDeltaV:            "BlackLevelDeltaV",
	WhiteLevel:                  "WhiteLevel",
	DefaultScale:                "DefaultScale",
	DefaultCropOrigin:           "DefaultCropOrigin",
	DefaultCropSize:             "DefaultCropSize",
	ColorMatrix1:                "ColorMatrix1",
	ColorMatrix2:                "ColorMatrix2",
	CameraCalibration1:          "CameraCalibration1",
	CameraCalibration2:          "CameraCalibration2",
	ReductionMatrix1:            "ReductionMatrix1",
	ReductionMatrix2:            "ReductionMatrix2",
	AnalogBalance:               "AnalogBalance",
	AsShotNeutral:               "AsShotNeutral",
	AsShotWhiteXY:               "AsShotWhiteXY",
	BaselineExposure:            "BaselineExposure",
	BaselineNoise:               "BaselineNoise",
	BaselineSharpness:           "BaselineSharpness",
	BayerGreenSplit:             "BayerGreenSplit",
	LinearResponseLimit:         "LinearResponseLimit",
	CameraSerialNumber:          "CameraSerialNumber",
	LensInfo:                    "LensInfo",
	ChromaBlurRadius:            "ChromaBlurRadius",
	AntiAliasStrength:           "AntiAliasStrength",
	ShadowScale:                 "ShadowScale",
	DNGPrivateData:              "DNGPrivateData",
	MakerNoteSafety:             "MakerNoteSafety",
	CalibrationIlluminant1:      "CalibrationIlluminant1",
	CalibrationIlluminant2:      "CalibrationIlluminant2",
	BestQualityScale:            "BestQualityScale",
	RawDataUniqueID:             "RawDataUniqueID",
	OriginalRawFileName:         "OriginalRawFileName",
	OriginalRawFileData:         "OriginalRawFileData",
	ActiveArea:                  "ActiveArea",
	MaskedAreas:                 "MaskedAreas",
	AsShotICCProfile:            "AsShotICCProfile",
	AsShotPreProfileMatrix:      "AsShotPreProfileMatrix",
	CurrentICCProfile:           "CurrentICCProfile",
	CurrentPreProfileMatrix:     "CurrentPreProfileMatrix",
	ColorimetricReference:       "ColorimetricReference",
	CameraCalibrationSignature:  "CameraCalibrationSignature",
	ProfileCalibrationSignature: "ProfileCalibrationSignature",
	AsShotProfileName:           "AsShotProfileName",
	NoiseReductionApplied:       "NoiseReductionApplied",
	ProfileName:                 "ProfileName",
	ProfileHueSatMapDims:        "ProfileHueSatMapDims",
	ProfileHueSatMapData1:       "ProfileHueSatMapData1",
	ProfileHueSatMapData2:       "ProfileHueSatMapData2",
	ProfileToneCurve:            "ProfileToneCurve",
	ProfileEmbedPolicy:          "ProfileEmbedPolicy",
	ProfileCopyright:            "ProfileCopyright",
	ForwardMatrix1:              "ForwardMatrix1",
	ForwardMatrix2:              "ForwardMatrix2",
	PreviewApplicationName:      "PreviewApplicationName",
	PreviewApplicationVersion:   "PreviewApplicationVersion",
	PreviewSettingsName:         "PreviewSettingsName",
	PreviewSettingsDigest:       "PreviewSettingsDigest",
	PreviewColorSpace:           "PreviewColorSpace",
	PreviewDateTime:             "PreviewDateTime",
	RawImageDigest:              "RawImageDigest",
	OriginalRawFileDigest:       "OriginalRawFileDigest",
	SubTileBlockSize:            "SubTileBlockSize",
	RowInterleaveFactor:         "RowInterleaveFactor",
	ProfileLookTableDims:        "ProfileLookTableDims",
	ProfileLookTableData:        "ProfileLookTableData",
	OpcodeList1:                 "OpcodeList1",
	OpcodeList2:                 "OpcodeList2",
	OpcodeList3:                 "OpcodeList3",
	NoiseProfile:                "NoiseProfile",
}

// Name returns the registered name of t and whether it is known.
func (t TagID) Name() (string, bool) {
	name, ok := tagNames[t]
	return name, ok
}

func (t TagID) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Tag(%#04x)", uint16(t))
}

// ParseTagID resolves a tag name, or a decimal or 0x-prefixed number, to a
// TagID.
func ParseTagID(s string) (TagID, bool) {
	if t, ok := tagsByName[s]; ok {
		return t, true
	}
	var n uint16
	if _, err := fmt.Sscan(s, &n); err == nil {
		return TagID(n), true
	}
	return 0, false
}
