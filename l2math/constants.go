package l2math

// =============================================================================
// Shared constants
// =============================================================================

// Rounding
const (
	// toint64 is 1/eps: adding and removing it rounds a binary64 with
	// |x| < 2^52 to an integer neighbour.
	toint64 = 1 / 0x1p-52

	// roundBias32 is the largest float32 strictly below 0.5.
	roundBias32 = 0.5 - 0.25*0x1p-23

	// huge is added to tiny arguments to raise inexact without changing
	// the result.
	huge = 0x1p120
)

// ln(2), split for Cody-Waite reduction. n*ln2Hi is exact for |n| < 2000.
const (
	ln2    = 0.693147180559945309417232121458176568 // 0x3fe62e42 fefa39ef
	ln2Hi  = 6.93147180369123816490e-01             // 0x3fe62e42 fee00000
	ln2Lo  = 1.90821492927058770002e-10             // 0x3dea39ef 35793c76
	invLn2 = 1.44269504088896338700e+00             // 0x3ff71547 652b82fe
)

// Exp thresholds and rational approximation coefficients for
// R(z) ~ 2 + P1*z + ... + P5*z^5 on [0, 0.34658], error < 2^-59.
const (
	expOverflow   = 7.09782712893383973096e+02
	expUnderflow  = -7.45133219101941108420e+02
	expDenormal   = -7.08396418532264106224e+02
	expP1         = 1.66666666666666019037e-01  // 0x3FC55555 5555553E
	expP2         = -2.77777777770155933842e-03 // 0xBF66C16C 16BEBD93
	expP3         = 6.61375632143793436117e-05  // 0x3F11566A AF25DE2C
	expP4         = -1.65339022054652515390e-06 // 0xBEBBBD41 C5D26BF1
	expP5         = 4.13813679705723846039e-08  // 0x3E663769 72BEA4D0
	expMinSubnorm = 0x1p-149
)

// Expm1 rational coefficients: Q1..Q5 on [0, 0.5*ln2].
const (
	expm1Q1 = -3.33333333333331316428e-02 // 0xBFA11111 111110F4
	expm1Q2 = 1.58730158725481460165e-03  // 0x3F5A01A0 19FE5585
	expm1Q3 = -7.93650757867487942473e-05 // 0xBF14CE19 9EAADBB7
	expm1Q4 = 4.00821782732936239552e-06  // 0x3ED0CFCA 86E65239
	expm1Q5 = -2.01099218183624371326e-07 // 0xBE8AFDB7 6E09C32D
)

// Log polynomial: R(s) ~ Lg1*s^2 + ... + Lg7*s^14 on [0, 0.1716], error < 2^-58.45.
const (
	lg1 = 6.666666666666735130e-01 // 3FE55555 55555593
	lg2 = 3.999999999940941908e-01 // 3FD99999 9997FA04
	lg3 = 2.857142874366239149e-01 // 3FD24924 94229359
	lg4 = 2.222219843214978396e-01 // 3FCC71C5 1D8E78AF
	lg5 = 1.818357216161805012e-01 // 3FC74664 96CB03DE
	lg6 = 1.531383769920937332e-01 // 3FC39A09 D078C69F
	lg7 = 1.479819860511658591e-01 // 3FC2F112 DF3E5244
)

// k_expo2: k is chosen so that k*ln2 has minimal relative error and
// x - k*ln2 stays above log(DBL_MIN) for every x that reaches it.
const (
	expo2K    = 2043
	expo2KLn2 = 0x1.62066151add8bp+10 // k*ln2
)

// High words used for region selection (top 32 bits of the encoding).
const (
	hiLn2         = 0x3fe62e42 // ln(2)
	hiLogMax      = 0x40862e42 // ln(DBL_MAX)
	hiOne         = 0x3ff00000 // 1.0
	hiHalfLn2     = 0x3fd62e42 // 0.5*ln(2)
	hiThreeHalfLn = 0x3ff0a2b2 // 1.5*ln(2)
)
