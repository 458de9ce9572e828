package bio

// GeneticCodes is a map holding genetic codes.
// This file was generated using gcode program from NCBI genetic codes file.
var GeneticCodes = map[int]*GeneticCode{
	1: NewGeneticCode(1,
		"Standard",
		"",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M------**--*----M---------------M----------------------------"),
	2: NewGeneticCode(2,
		"Vertebrate Mitochondrial",
		"",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSS**VVVVAAAADDEEGGGG",
		"----------**--------------------MMMM----------**---M------------"),
	3: NewGeneticCode(3,
		"Yeast Mitochondrial",
		"",
		"FFLLSSSSYY**CCWWTTTTPPPPHHQQRRRRIIMMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------**----------------------MM---------------M------------"),
	4: NewGeneticCode(4,
		"Mold Mitochondrial; Protozoan Mitochondrial; Coelenterate Mitochondrial; Mycoplasma; Spiroplasma",
		"",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--MM------**-------M------------MMMM---------------M------------"),
	5: NewGeneticCode(5,
		"Invertebrate Mitochondrial",
		"",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSSSVVVVAAAADDEEGGGG",
		"---M------**--------------------MMMM---------------M------------"),
	6: NewGeneticCode(6,
		"Ciliate Nuclear; Dasycladacean Nuclear; Hexamita Nuclear",
		"",
		"FFLLSSSSYYQQCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--------------*--------------------M----------------------------"),
	9: NewGeneticCode(9,
		"Echinoderm Mitochondrial; Flatworm Mitochondrial",
		"",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		"----------**-----------------------M---------------M------------"),
	10: NewGeneticCode(10,
		"Euplotid Nuclear",
		"",
		"FFLLSSSSYY**CCCWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------**-----------------------M----------------------------"),
	11: NewGeneticCode(11,
		"Bacterial, Archaeal and Plant Plastid",
		"",
		"FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M------**--*----M------------MMMM---------------M------------"),
	12: NewGeneticCode(12,
		"Alternative Yeast Nuclear",
		"",
		"FFLLSSSSYY**CC*WLLLSPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------**--*----M---------------M----------------------------"),
	13: NewGeneticCode(13,
		"Ascidian Mitochondrial",
		"",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNKKSSGGVVVVAAAADDEEGGGG",
		"---M------**----------------------MM---------------M------------"),
	14: NewGeneticCode(14,
		"Alternative Flatworm Mitochondrial",
		"",
		"FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		"-----------*-----------------------M----------------------------"),
	15: NewGeneticCode(15,
		"Blepharisma Macronuclear",
		"",
		"FFLLSSSSYY*QCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------*---*--------------------M----------------------------"),
	16: NewGeneticCode(16,
		"Chlorophycean Mitochondrial",
		"",
		"FFLLSSSSYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------*---*--------------------M----------------------------"),
	21: NewGeneticCode(21,
		"Trematode Mitochondrial",
		"",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIMMTTTTNNNKSSSSVVVVAAAADDEEGGGG",
		"----------**-----------------------M---------------M------------"),
	22: NewGeneticCode(22,
		"Scenedesmus obliquus Mitochondrial",
		"",
		"FFLLSS*SYY*LCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"------*---*---*--------------------M----------------------------"),
	23: NewGeneticCode(23,
		"Thraustochytrium Mitochondrial",
		"",
		"FF*LSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--*-------**--*-----------------M--M---------------M------------"),
	24: NewGeneticCode(24,
		"Rhabdopleuridae Mitochondrial",
		"",
		"FFLLSSSSYY**CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
		"---M------**-------M---------------M---------------M------------"),
	25: NewGeneticCode(25,
		"Candidate Division SR1 and Gracilibacteria",
		"",
		"FFLLSSSSYY**CCGWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M------**-----------------------M---------------M------------"),
	26: NewGeneticCode(26,
		"Pachysolen tannophilus Nuclear",
		"",
		"FFLLSSSSYY**CC*WLLLAPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------**--*----M---------------M----------------------------"),
	27: NewGeneticCode(27,
		"Karyorelict Nuclear",
		"",
		"FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--------------*--------------------M----------------------------"),
	28: NewGeneticCode(28,
		"Condylostoma Nuclear",
		"",
		"FFLLSSSSYYQQCCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------**--*--------------------M----------------------------"),
	29: NewGeneticCode(29,
		"Mesodinium Nuclear",
		"",
		"FFLLSSSSYYYYCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--------------*--------------------M----------------------------"),
	30: NewGeneticCode(30,
		"Peritrich Nuclear",
		"",
		"FFLLSSSSYYEECC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"--------------*--------------------M----------------------------"),
	31: NewGeneticCode(31,
		"Blastocrithidia Nuclear",
		"",
		"FFLLSSSSYYEECCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"----------**-----------------------M----------------------------"),
	32: NewGeneticCode(32,
		"Balanophoraceae Plastid",
		"",
		"FFLLSSSSYY*WCC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG",
		"---M------*---*----M------------MMMM---------------M------------"),
	33: NewGeneticCode(33,
		"Cephalodiscidae Mitochondrial",
		"",
		"FFLLSSSSYYY*CCWWLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSSKVVVVAAAADDEEGGGG",
		"---M-------*-------M---------------M---------------M------------"),
}
