package insts

// Opcode is an IA-64 mnemonic. Purple, Cyan, Brown and White mark table
// positions the architecture leaves reserved or undefined.
type Opcode uint16

// IA-64 opcodes.
const (
	OpPurple Opcode = iota
	OpCyan
	OpBrown
	OpWhite

	OpAddp4
	OpAdds
	OpAddl
	OpAdd
	OpAddPlusOne
	OpAnd
	OpAndcm
	OpOr
	OpSub
	OpSubMinusOne
	OpXor

	OpPtcL
	OpProbeW
	OpPtcG
	OpThash
	OpMovM
	OpMovI
	OpPtcGa
	OpTtag
	OpPtrD
	OpPtrI
	OpItrD
	OpTpa
	OpItcD
	OpItrI
	OpTak
	OpItcI
	OpChkSMInt
	OpChkSFp
	OpAlloc
	OpLd1
	OpLd2
	OpLd4
	OpLd8
	OpLd1S
	OpLd2S
	OpLd4S
	OpLd8S
	OpLd1A
	OpLd2A
	OpLd4A
	OpLd8A
	OpLd1Sa
	OpLd2Sa
	OpLd4Sa
	OpLd8Sa
	OpLd1Bias
	OpLd2Bias
	OpLd4Bias
	OpLd8Bias
	OpLd1Acq
	OpLd2Acq
	OpLd4Acq
	OpLd8Acq
	OpLd8Fill
	OpLd1CClr
	OpLd2CClr
	OpLd4CClr
	OpLd8CClr
	OpLd1CNc
	OpLd2CNc
	OpLd4CNc
	OpLd8CNc
	OpLd1CClrAcq
	OpLd2CClrAcq
	OpLd4CClrAcq
	OpLd8CClrAcq
	OpSt1
	OpSt2
	OpSt4
	OpSt8
	OpSt1Rel
	OpSt2Rel
	OpSt4Rel
	OpSt8Rel
	OpSt8Spill
	OpProbeR
	OpCmpxchg1Acq
	OpCmpxchg2Acq
	OpCmpxchg4Acq
	OpCmpxchg8Acq
	OpCmpxchg1Rel
	OpCmpxchg2Rel
	OpCmpxchg4Rel
	OpCmpxchg8Rel
	OpXchg1
	OpXchg2
	OpXchg4
	OpXchg8
	OpFetchadd4Acq
	OpFetchadd8Acq
	OpFetchadd4Rel
	OpFetchadd8Rel
	OpGetfSig
	OpGetfExp
	OpGetfS
	OpGetfD
	OpCmp8xchg16Acq
	OpCmp8xchg16Rel
	OpLd16
	OpLd16Acq
	OpSt16
	OpSt16Rel
	OpLdfe
	OpLdf8
	OpLdfs
	OpLdfd
	OpLdfeS
	OpLdf8S
	OpLdfsS
	OpLdfdS
	OpLdfeA
	OpLdf8A
	OpLdfsA
	OpLdfdA
	OpLdfeSa
	OpLdf8Sa
	OpLdfsSa
	OpLdfdSa
	OpLdfFill
	OpLdfeCClr
	OpLdf8CClr
	OpLdfsCClr
	OpLdfdCClr
	OpLdfp8CClr
	OpLdfpsCClr
	OpLdfpdCClr
	OpLdfp8CNc
	OpLdfpsCNc
	OpLdfpdCNc
	OpBreakM
	OpInvala
	OpFwb
	OpSrlzD
	OpSrlzI
	OpInvalaEInt
	OpMf
	OpInvalaEFp
	OpMfA
	OpSyncI
	OpSum
	OpRum
	OpSsm
	OpRsm
	OpLoadrs
	OpFlushrs
	OpHintM
	OpNopM
	OpChkANcInt
	OpChkAClrInt
	OpChkANcFp
	OpChkAClrFp
	OpFc
	OpProbeRwFault
	OpProbeRFault
	OpProbeWFault
	OpPtcE
	OpLdfeCNc
	OpLdf8CNc
	OpLdfsCNc
	OpLdfdCNc
	OpLfetch
	OpLfetchExcl
	OpLfetchFault
	OpLfetchFaultExcl
	OpStfe
	OpStf8
	OpStfs
	OpStfd
	OpStfSpill

	OpShladd
	OpShladdp4

	OpPadd1
	OpPadd1Sss
	OpPadd1Uuu
	OpPadd1Uus
	OpPsub1
	OpPsub1Sss
	OpPsub1Uuu
	OpPsub1Uus

	OpLdfp8
	OpLdfps
	OpLdfpd
	OpLdfp8S
	OpLdfpsS
	OpLdfpdS
	OpLdfp8A
	OpLdfpsA
	OpLdfpdA
	OpLdfp8Sa
	OpLdfpsSa
	OpLdfpdSa

	OpSetfSig
	OpSetfExp
	OpSetfS
	OpSetfD
	OpPavg1
	OpPavg1Raz
	OpPavgsub1
	OpPcmp1Eq
	OpPcmp1Gt
	OpPadd2
	OpPadd2Sss
	OpPadd2Uuu
	OpPadd2Uus
	OpPsub2
	OpPsub2Sss
	OpPsub2Uuu
	OpPsub2Uus
	OpPavg2
	OpPavg2Raz
	OpPavgsub2
	OpPshladd2
	OpPshradd2
	OpPcmp2Eq
	OpPcmp2Gt
	OpPadd4
	OpPsub4
	OpPcmp4Eq
	OpPcmp4Gt
	OpHintX
	OpNopX
	OpMovl
	OpMov
	OpBrlCond
	OpBrlCall
	OpBrCall
	OpBrpIP
	OpBreakX
	OpBreakI
	OpZxt1
	OpZxt2
	OpZxt4
	OpSxt1
	OpSxt2
	OpSxt4
	OpCzx1L
	OpCzx2L
	OpCzx1R
	OpCzx2R
	OpHintI
	OpNopI
	OpChkSIInt
	OpMovToBr
	OpMovRetToBr
	OpDep
	OpTbitZ
	OpTnatZ
	OpTbitZUnc
	OpTnatZUnc
	OpTbitZAnd
	OpTnatZAnd
	OpTbitNzAnd
	OpTnatNzAnd
	OpTbitZOr
	OpTnatZOr
	OpTbitNzOr
	OpTnatNzOr
	OpTbitZOrAndcm
	OpTnatZOrAndcm
	OpTbitNzOrAndcm
	OpTnatNzOrAndcm
	OpTfZ
	OpTfZNc
	OpTfZAnd
	OpTfNzAnd
	OpTfZOr
	OpTfNzOr
	OpTfZOrAndcm
	OpTfNzOrAndcm
	OpDepZ
	OpExtr
	OpShrp
	OpExtrU
	OpPmin1U
	OpUnpack1H
	OpPmax1U
	OpUnpack1L
	OpMix1R
	OpMix1L
	OpPsad1
	OpMux1
	OpPshr2U
	OpPmpyshr2U
	OpPshr2
	OpPmpyshr2
	OpPshl2
	OpPshr2UFixed
	OpPshr2Fixed
	OpPopcnt
	OpClz
	OpPack2Uss
	OpPack2Sss
	OpPmin2
	OpUnpack2H
	OpUnpack2L
	OpPmax2
	OpMix2R
	OpMix2L
	OpPmpy2R
	OpPmpy2L
	OpPshl2Fixed
	OpMux2
	OpPshr4U
	OpPshr4
	OpPshl4
	OpMpy4
	OpMpyshl4
	OpPshr4UFixed
	OpPshr4Fixed
	OpPack4Sss
	OpUnpack4H
	OpUnpack4L
	OpMix4R
	OpMix4L
	OpPshl4Fixed
	OpShrU
	OpShr
	OpShl

	OpBreakB
	OpCover
	OpClrrb
	OpClrrbPr
	OpRfi
	OpBsw0
	OpBsw1
	OpEpc
	OpVmsw0
	OpVmsw1
	OpBrCond
	OpBrIa
	OpBrRet

	OpNopB
	OpHintB
	OpBrp
	OpBrpRet

	OpBrWexit
	OpBrWtop
	OpBrCloop
	OpBrCexit
	OpBrCtop

	OpFrcpa
	OpFrsqrta
	OpBreakF
	OpFsetc
	OpFclrf
	OpFchkf
	OpFmergeS
	OpFmergeNs
	OpFmergeSe

	OpFmin
	OpFmax
	OpFamin
	OpFamax
	OpFcvtFx
	OpFcvtFxu
	OpFcvtFxTrunc
	OpFcvtFxuTrunc
	OpFcvtXf
	OpFpack
	OpFand
	OpFandcm
	OpFor
	OpFxor

	OpFswap
	OpFswapNl
	OpFswapNr
	OpFmixLr
	OpFmixR
	OpFmixL

	OpFsxtR
	OpFsxtL

	OpHintF
	OpNopF

	OpFprcpa
	OpFprsqrta
	OpFpmergeS
	OpFpmergeNs
	OpFpmergeSe

	OpFpmin
	OpFpmax
	OpFpamin
	OpFpamax
	OpFpcvtFx
	OpFpcvtFxu
	OpFpcvtFxTrunc
	OpFpcvtFxuTrunc
	OpFpcmpEq
	OpFpcmpLt
	OpFpcmpLe
	OpFpcmpUnord
	OpFpcmpNeq
	OpFpcmpNlt
	OpFpcmpNle
	OpFpcmpOrd
	OpFcmpEq
	OpFcmpLt
	OpFcmpLe
	OpFcmpUnord
	OpFcmpEqUnc
	OpFcmpLtUnc
	OpFcmpLeUnc
	OpFcmpUnordUnc
	OpFclassMUnc
	OpFclassM
	OpFnorm
	OpFnormD
	OpFnormS
	OpFmpy
	OpFmpyD
	OpFmpyS
	OpFmaS
	OpFma
	OpFpma
	OpFmaD
	OpFmsS
	OpFms
	OpFpms
	OpFmsD
	OpFnmaS
	OpFnma
	OpFpnma
	OpFnmaD
	OpXmaL
	OpXmaHu
	OpXmaH
	OpXmpyL
	OpXmpyHu
	OpXmpyH
	OpFselect

	OpCmp4Eq
	OpCmp4EqAnd
	OpCmp4EqOr
	OpCmp4EqOrAndcm
	OpCmp4EqUnc
	OpCmp4GeAnd
	OpCmp4GeOr
	OpCmp4GeOrAndcm
	OpCmp4GtAnd
	OpCmp4GtOr
	OpCmp4GtOrAndcm
	OpCmp4LeAnd
	OpCmp4LeOr
	OpCmp4LeOrAndcm
	OpCmp4Lt
	OpCmp4LtAnd
	OpCmp4LtOr
	OpCmp4LtOrAndcm
	OpCmp4LtUnc
	OpCmp4Ltu
	OpCmp4LtuUnc
	OpCmp4NeAnd
	OpCmp4NeOr
	OpCmp4NeOrAndcm
	OpCmpEq
	OpCmpEqAnd
	OpCmpEqOr
	OpCmpEqOrAndcm
	OpCmpEqUnc
	OpCmpGeAnd
	OpCmpGeOr
	OpCmpGeOrAndcm
	OpCmpGtAnd
	OpCmpGtOr
	OpCmpGtOrAndcm
	OpCmpLeAnd
	OpCmpLeOr
	OpCmpLeOrAndcm
	OpCmpLt
	OpCmpLtAnd
	OpCmpLtOr
	OpCmpLtOrAndcm
	OpCmpLtUnc
	OpCmpLtu
	OpCmpLtuUnc
	OpCmpNeAnd
	OpCmpNeOr
	OpCmpNeOrAndcm

	numOpcodes
)

var opcodeNames = [numOpcodes]string{
	OpPurple: "purple",
	OpCyan:   "cyan",
	OpBrown:  "brown",
	OpWhite:  "white",

	OpAddp4:       "addp4",
	OpAdds:        "adds",
	OpAddl:        "addl",
	OpAdd:         "add",
	OpAddPlusOne:  "add",
	OpAnd:         "and",
	OpAndcm:       "andcm",
	OpOr:          "or",
	OpSub:         "sub",
	OpSubMinusOne: "sub",
	OpXor:         "xor",

	OpPtcL:            "ptc.l",
	OpProbeW:          "probe.w",
	OpPtcG:            "ptc.g",
	OpThash:           "thash",
	OpMovM:            "mov.m",
	OpMovI:            "mov.i",
	OpPtcGa:           "ptc.ga",
	OpTtag:            "ttag",
	OpPtrD:            "ptr.d",
	OpPtrI:            "ptr.i",
	OpItrD:            "itr.d",
	OpTpa:             "tpa",
	OpItcD:            "itc.d",
	OpItrI:            "itr.i",
	OpTak:             "tak",
	OpItcI:            "itc.i",
	OpChkSMInt:        "chk.s.m",
	OpChkSFp:          "chk.s",
	OpAlloc:           "alloc",
	OpLd1:             "ld1",
	OpLd2:             "ld2",
	OpLd4:             "ld4",
	OpLd8:             "ld8",
	OpLd1S:            "ld1.s",
	OpLd2S:            "ld2.s",
	OpLd4S:            "ld4.s",
	OpLd8S:            "ld8.s",
	OpLd1A:            "ld1.a",
	OpLd2A:            "ld2.a",
	OpLd4A:            "ld4.a",
	OpLd8A:            "ld8.a",
	OpLd1Sa:           "ld1.sa",
	OpLd2Sa:           "ld2.sa",
	OpLd4Sa:           "ld4.sa",
	OpLd8Sa:           "ld8.sa",
	OpLd1Bias:         "ld1.bias",
	OpLd2Bias:         "ld2.bias",
	OpLd4Bias:         "ld4.bias",
	OpLd8Bias:         "ld8.bias",
	OpLd1Acq:          "ld1.acq",
	OpLd2Acq:          "ld2.acq",
	OpLd4Acq:          "ld4.acq",
	OpLd8Acq:          "ld8.acq",
	OpLd8Fill:         "ld8.fill",
	OpLd1CClr:         "ld1.c.clr",
	OpLd2CClr:         "ld2.c.clr",
	OpLd4CClr:         "ld4.c.clr",
	OpLd8CClr:         "ld8.c.clr",
	OpLd1CNc:          "ld1.c.nc",
	OpLd2CNc:          "ld2.c.nc",
	OpLd4CNc:          "ld4.c.nc",
	OpLd8CNc:          "ld8.c.nc",
	OpLd1CClrAcq:      "ld1.c.clr.acq",
	OpLd2CClrAcq:      "ld2.c.clr.acq",
	OpLd4CClrAcq:      "ld4.c.clr.acq",
	OpLd8CClrAcq:      "ld8.c.clr.acq",
	OpSt1:             "st1",
	OpSt2:             "st2",
	OpSt4:             "st4",
	OpSt8:             "st8",
	OpSt1Rel:          "st1.rel",
	OpSt2Rel:          "st2.rel",
	OpSt4Rel:          "st4.rel",
	OpSt8Rel:          "st8.rel",
	OpSt8Spill:        "st8.spill",
	OpProbeR:          "probe.r",
	OpCmpxchg1Acq:     "cmpxchg1.acq",
	OpCmpxchg2Acq:     "cmpxchg2.acq",
	OpCmpxchg4Acq:     "cmpxchg4.acq",
	OpCmpxchg8Acq:     "cmpxchg8.acq",
	OpCmpxchg1Rel:     "cmpxchg1.rel",
	OpCmpxchg2Rel:     "cmpxchg2.rel",
	OpCmpxchg4Rel:     "cmpxchg4.rel",
	OpCmpxchg8Rel:     "cmpxchg8.rel",
	OpXchg1:           "xchg1",
	OpXchg2:           "xchg2",
	OpXchg4:           "xchg4",
	OpXchg8:           "xchg8",
	OpFetchadd4Acq:    "fetchadd4.acq",
	OpFetchadd8Acq:    "fetchadd8.acq",
	OpFetchadd4Rel:    "fetchadd4.rel",
	OpFetchadd8Rel:    "fetchadd8.rel",
	OpGetfSig:         "getf.sig",
	OpGetfExp:         "getf.exp",
	OpGetfS:           "getf.s",
	OpGetfD:           "getf.d",
	OpCmp8xchg16Acq:   "cmp8xchg16.acq",
	OpCmp8xchg16Rel:   "cmp8xchg16.rel",
	OpLd16:            "ld16",
	OpLd16Acq:         "ld16.acq",
	OpSt16:            "st16",
	OpSt16Rel:         "st16.rel",
	OpLdfe:            "ldfe",
	OpLdf8:            "ldf8",
	OpLdfs:            "ldfs",
	OpLdfd:            "ldfd",
	OpLdfeS:           "ldfe.s",
	OpLdf8S:           "ldf8.s",
	OpLdfsS:           "ldfs.s",
	OpLdfdS:           "ldfd.s",
	OpLdfeA:           "ldfe.a",
	OpLdf8A:           "ldf8.a",
	OpLdfsA:           "ldfs.a",
	OpLdfdA:           "ldfd.a",
	OpLdfeSa:          "ldfe.sa",
	OpLdf8Sa:          "ldf8.sa",
	OpLdfsSa:          "ldfs.sa",
	OpLdfdSa:          "ldfd.sa",
	OpLdfFill:         "ldf.fill",
	OpLdfeCClr:        "ldfe.c.clr",
	OpLdf8CClr:        "ldf8.c.clr",
	OpLdfsCClr:        "ldfs.c.clr",
	OpLdfdCClr:        "ldfd.c.clr",
	OpLdfp8CClr:       "ldfp8.c.clr",
	OpLdfpsCClr:       "ldfps.c.clr",
	OpLdfpdCClr:       "ldfpd.c.clr",
	OpLdfp8CNc:        "ldfp8.c.nc",
	OpLdfpsCNc:        "ldfps.c.nc",
	OpLdfpdCNc:        "ldfpd.c.nc",
	OpBreakM:          "break.m",
	OpInvala:          "invala",
	OpFwb:             "fwb",
	OpSrlzD:           "srlz.d",
	OpSrlzI:           "srlz.i",
	OpInvalaEInt:      "invala.e",
	OpMf:              "mf",
	OpInvalaEFp:       "invala.e",
	OpMfA:             "mf.a",
	OpSyncI:           "sync.i",
	OpSum:             "sum",
	OpRum:             "rum",
	OpSsm:             "ssm",
	OpRsm:             "rsm",
	OpLoadrs:          "loadrs",
	OpFlushrs:         "flushrs",
	OpHintM:           "hint.m",
	OpNopM:            "nop.m",
	OpChkANcInt:       "chk.a.nc",
	OpChkAClrInt:      "chk.a.clr",
	OpChkANcFp:        "chk.a.nc",
	OpChkAClrFp:       "chk.a.clr",
	OpFc:              "fc",
	OpProbeRwFault:    "probe.rw.fault",
	OpProbeRFault:     "probe.r.fault",
	OpProbeWFault:     "probe.w.fault",
	OpPtcE:            "ptc.e",
	OpLdfeCNc:         "ldfe.c.nc",
	OpLdf8CNc:         "ldf8.c.nc",
	OpLdfsCNc:         "ldfs.c.nc",
	OpLdfdCNc:         "ldfd.c.nc",
	OpLfetch:          "lfetch",
	OpLfetchExcl:      "lfetch.excl",
	OpLfetchFault:     "lfetch.fault",
	OpLfetchFaultExcl: "lfetch.fault.excl",
	OpStfe:            "stfe",
	OpStf8:            "stf8",
	OpStfs:            "stfs",
	OpStfd:            "stfd",
	OpStfSpill:        "stf.spill",

	OpShladd:   "shladd",
	OpShladdp4: "shladdp4",

	OpPadd1:    "padd1",
	OpPadd1Sss: "padd1.sss",
	OpPadd1Uuu: "padd1.uuu",
	OpPadd1Uus: "padd1.uus",
	OpPsub1:    "psub1",
	OpPsub1Sss: "psub1.sss",
	OpPsub1Uuu: "psub1.uuu",
	OpPsub1Uus: "psub1.uus",

	OpLdfp8:   "ldfp8",
	OpLdfps:   "ldfps",
	OpLdfpd:   "ldfpd",
	OpLdfp8S:  "ldfp8.s",
	OpLdfpsS:  "ldfps.s",
	OpLdfpdS:  "ldfpd.s",
	OpLdfp8A:  "ldfp8.a",
	OpLdfpsA:  "ldfps.a",
	OpLdfpdA:  "ldfpd.a",
	OpLdfp8Sa: "ldfp8.sa",
	OpLdfpsSa: "ldfps.sa",
	OpLdfpdSa: "ldfpd.sa",

	OpSetfSig:       "setf.sig",
	OpSetfExp:       "setf.exp",
	OpSetfS:         "setf.s",
	OpSetfD:         "setf.d",
	OpPavg1:         "pavg1",
	OpPavg1Raz:      "pavg1.raz",
	OpPavgsub1:      "pavgsub1",
	OpPcmp1Eq:       "pcmp1.eq",
	OpPcmp1Gt:       "pcmp1.gt",
	OpPadd2:         "padd2",
	OpPadd2Sss:      "padd2.sss",
	OpPadd2Uuu:      "padd2.uuu",
	OpPadd2Uus:      "padd2.uus",
	OpPsub2:         "psub2",
	OpPsub2Sss:      "psub2.sss",
	OpPsub2Uuu:      "psub2.uuu",
	OpPsub2Uus:      "psub2.uus",
	OpPavg2:         "pavg2",
	OpPavg2Raz:      "pavg2.raz",
	OpPavgsub2:      "pavgsub2",
	OpPshladd2:      "pshladd2",
	OpPshradd2:      "pshradd2",
	OpPcmp2Eq:       "pcmp2.eq",
	OpPcmp2Gt:       "pcmp2.gt",
	OpPadd4:         "padd4",
	OpPsub4:         "psub4",
	OpPcmp4Eq:       "pcmp4.eq",
	OpPcmp4Gt:       "pcmp4.gt",
	OpHintX:         "hint.x",
	OpNopX:          "nop.x",
	OpMovl:          "movl",
	OpMov:           "mov",
	OpBrlCond:       "brl.cond",
	OpBrlCall:       "brl.call",
	OpBrCall:        "br.call",
	OpBrpIP:         "brp",
	OpBreakX:        "break.x",
	OpBreakI:        "break.i",
	OpZxt1:          "zxt1",
	OpZxt2:          "zxt2",
	OpZxt4:          "zxt4",
	OpSxt1:          "sxt1",
	OpSxt2:          "sxt2",
	OpSxt4:          "sxt4",
	OpCzx1L:         "czx1.l",
	OpCzx2L:         "czx2.l",
	OpCzx1R:         "czx1.r",
	OpCzx2R:         "czx2.r",
	OpHintI:         "hint.i",
	OpNopI:          "nop.i",
	OpChkSIInt:      "chk.s.i",
	OpMovToBr:       "mov",
	OpMovRetToBr:    "mov.ret",
	OpDep:           "dep",
	OpTbitZ:         "tbit.z",
	OpTnatZ:         "tnat.z",
	OpTbitZUnc:      "tbit.z.unc",
	OpTnatZUnc:      "tnat.z.unc",
	OpTbitZAnd:      "tbit.z.and",
	OpTnatZAnd:      "tnat.z.and",
	OpTbitNzAnd:     "tbit.nz.and",
	OpTnatNzAnd:     "tnat.nz.and",
	OpTbitZOr:       "tbit.z.or",
	OpTnatZOr:       "tnat.z.or",
	OpTbitNzOr:      "tbit.nz.or",
	OpTnatNzOr:      "tnat.nz.or",
	OpTbitZOrAndcm:  "tbit.z.or.andcm",
	OpTnatZOrAndcm:  "tnat.z.or.andcm",
	OpTbitNzOrAndcm: "tbit.nz.or.andcm",
	OpTnatNzOrAndcm: "tnat.nz.or.andcm",
	OpTfZ:           "tf.z",
	OpTfZNc:         "tf.z.nc",
	OpTfZAnd:        "tf.z.and",
	OpTfNzAnd:       "tf.nz.and",
	OpTfZOr:         "tf.z.or",
	OpTfNzOr:        "tf.nz.or",
	OpTfZOrAndcm:    "tf.z.or.andcm",
	OpTfNzOrAndcm:   "tf.nz.or.andcm",
	OpDepZ:          "dep.z",
	OpExtr:          "extr",
	OpShrp:          "shrp",
	OpExtrU:         "extr.u",
	OpPmin1U:        "pmin1.u",
	OpUnpack1H:      "unpack1.h",
	OpPmax1U:        "pmax1.u",
	OpUnpack1L:      "unpack1.l",
	OpMix1R:         "mix1.r",
	OpMix1L:         "mix1.l",
	OpPsad1:         "psad1",
	OpMux1:          "mux1",
	OpPshr2U:        "pshr2.u",
	OpPmpyshr2U:     "pmpyshr2.u",
	OpPshr2:         "pshr2",
	OpPmpyshr2:      "pmpyshr2",
	OpPshl2:         "pshl2",
	OpPshr2UFixed:   "pshr2.u",
	OpPshr2Fixed:    "pshr2",
	OpPopcnt:        "popcnt",
	OpClz:           "clz",
	OpPack2Uss:      "pack2.uss",
	OpPack2Sss:      "pack2.sss",
	OpPmin2:         "pmin2",
	OpUnpack2H:      "unpack2.h",
	OpUnpack2L:      "unpack2.l",
	OpPmax2:         "pmax2",
	OpMix2R:         "mix2.r",
	OpMix2L:         "mix2.l",
	OpPmpy2R:        "pmpy2.r",
	OpPmpy2L:        "pmpy2.l",
	OpPshl2Fixed:    "pshl2",
	OpMux2:          "mux2",
	OpPshr4U:        "pshr4.u",
	OpPshr4:         "pshr4",
	OpPshl4:         "pshl4",
	OpMpy4:          "mpy4",
	OpMpyshl4:       "mpyshl4",
	OpPshr4UFixed:   "pshr4.u",
	OpPshr4Fixed:    "pshr4",
	OpPack4Sss:      "pack4.sss",
	OpUnpack4H:      "unpack4.h",
	OpUnpack4L:      "unpack4.l",
	OpMix4R:         "mix4.r",
	OpMix4L:         "mix4.l",
	OpPshl4Fixed:    "pshl4",
	OpShrU:          "shr.u",
	OpShr:           "shr",
	OpShl:           "shl",

	OpBreakB:  "break.b",
	OpCover:   "cover",
	OpClrrb:   "clrrb",
	OpClrrbPr: "clrrb.pr",
	OpRfi:     "rfi",
	OpBsw0:    "bsw.0",
	OpBsw1:    "bsw.1",
	OpEpc:     "epc",
	OpVmsw0:   "vmsw.0",
	OpVmsw1:   "vmsw.1",
	OpBrCond:  "br.cond",
	OpBrIa:    "br.ia",
	OpBrRet:   "br.ret",

	OpNopB:   "nop.b",
	OpHintB:  "hint.b",
	OpBrp:    "brp",
	OpBrpRet: "brp.ret",

	OpBrWexit: "br.wexit",
	OpBrWtop:  "br.wtop",
	OpBrCloop: "br.cloop",
	OpBrCexit: "br.cexit",
	OpBrCtop:  "br.ctop",

	OpFrcpa:    "frcpa",
	OpFrsqrta:  "frsqrta",
	OpBreakF:   "break.f",
	OpFsetc:    "fsetc",
	OpFclrf:    "fclrf",
	OpFchkf:    "fchkf",
	OpFmergeS:  "fmerge.s",
	OpFmergeNs: "fmerge.ns",
	OpFmergeSe: "fmerge.se",

	OpFmin:         "fmin",
	OpFmax:         "fmax",
	OpFamin:        "famin",
	OpFamax:        "famax",
	OpFcvtFx:       "fcvt.fx",
	OpFcvtFxu:      "fcvt.fxu",
	OpFcvtFxTrunc:  "fcvt.fx.trunc",
	OpFcvtFxuTrunc: "fcvt.fxu.trunc",
	OpFcvtXf:       "fcvt.xf",
	OpFpack:        "fpack",
	OpFand:         "fand",
	OpFandcm:       "fandcm",
	OpFor:          "for",
	OpFxor:         "fxor",

	OpFswap:   "fswap",
	OpFswapNl: "fswap.nl",
	OpFswapNr: "fswap.nr",
	OpFmixLr:  "fmix.lr",
	OpFmixR:   "fmix.r",
	OpFmixL:   "fmix.l",

	OpFsxtR: "fsxt.r",
	OpFsxtL: "fsxt.l",

	OpHintF: "hint.f",
	OpNopF:  "nop.f",

	OpFprcpa:    "fprcpa",
	OpFprsqrta:  "fprsqrta",
	OpFpmergeS:  "fpmerge.s",
	OpFpmergeNs: "fpmerge.ns",
	OpFpmergeSe: "fpmerge.se",

	OpFpmin:         "fpmin",
	OpFpmax:         "fpmax",
	OpFpamin:        "fpamin",
	OpFpamax:        "fpamax",
	OpFpcvtFx:       "fpcvt.fx",
	OpFpcvtFxu:      "fpcvt.fxu",
	OpFpcvtFxTrunc:  "fpcvt.fx.trunc",
	OpFpcvtFxuTrunc: "fpcvt.fxu.trunc",
	OpFpcmpEq:       "fpcmp.eq",
	OpFpcmpLt:       "fpcmp.lt",
	OpFpcmpLe:       "fpcmp.le",
	OpFpcmpUnord:    "fpcmp.unord",
	OpFpcmpNeq:      "fpcmp.neq",
	OpFpcmpNlt:      "fpcmp.nlt",
	OpFpcmpNle:      "fpcmp.nle",
	OpFpcmpOrd:      "fpcmp.ord",
	OpFcmpEq:        "fcmp.eq",
	OpFcmpLt:        "fcmp.lt",
	OpFcmpLe:        "fcmp.le",
	OpFcmpUnord:     "fcmp.unord",
	OpFcmpEqUnc:     "fcmp.eq.unc",
	OpFcmpLtUnc:     "fcmp.lt.unc",
	OpFcmpLeUnc:     "fcmp.le.unc",
	OpFcmpUnordUnc:  "fcmp.unord.unc",
	OpFclassMUnc:    "fclass.m.unc",
	OpFclassM:       "fclass.m",
	OpFnorm:         "fnorm",
	OpFnormD:        "fnorm.d",
	OpFnormS:        "fnorm.s",
	OpFmpy:          "fmpy",
	OpFmpyD:         "fmpy.d",
	OpFmpyS:         "fmpy.s",
	OpFmaS:          "fma.s",
	OpFma:           "fma",
	OpFpma:          "fpma",
	OpFmaD:          "fma.d",
	OpFmsS:          "fms.s",
	OpFms:           "fms",
	OpFpms:          "fpms",
	OpFmsD:          "fms.d",
	OpFnmaS:         "fnma.s",
	OpFnma:          "fnma",
	OpFpnma:         "fpnma",
	OpFnmaD:         "fnma.d",
	OpXmaL:          "xma.l",
	OpXmaHu:         "xma.hu",
	OpXmaH:          "xma.h",
	OpXmpyL:         "xmpy.l",
	OpXmpyHu:        "xmpy.hu",
	OpXmpyH:         "xmpy.h",
	OpFselect:       "fselect",

	OpCmp4Eq:        "cmp4.eq",
	OpCmp4EqAnd:     "cmp4.eq.and",
	OpCmp4EqOr:      "cmp4.eq.or",
	OpCmp4EqOrAndcm: "cmp4.eq.or.andcm",
	OpCmp4EqUnc:     "cmp4.eq.unc",
	OpCmp4GeAnd:     "cmp4.ge.and",
	OpCmp4GeOr:      "cmp4.ge.or",
	OpCmp4GeOrAndcm: "cmp4.ge.or.andcm",
	OpCmp4GtAnd:     "cmp4.gt.and",
	OpCmp4GtOr:      "cmp4.gt.or",
	OpCmp4GtOrAndcm: "cmp4.gt.or.andcm",
	OpCmp4LeAnd:     "cmp4.le.and",
	OpCmp4LeOr:      "cmp4.le.or",
	OpCmp4LeOrAndcm: "cmp4.le.or.andcm",
	OpCmp4Lt:        "cmp4.lt",
	OpCmp4LtAnd:     "cmp4.lt.and",
	OpCmp4LtOr:      "cmp4.lt.or",
	OpCmp4LtOrAndcm: "cmp4.lt.or.andcm",
	OpCmp4LtUnc:     "cmp4.lt.unc",
	OpCmp4Ltu:       "cmp4.ltu",
	OpCmp4LtuUnc:    "cmp4.ltu.unc",
	OpCmp4NeAnd:     "cmp4.ne.and",
	OpCmp4NeOr:      "cmp4.ne.or",
	OpCmp4NeOrAndcm: "cmp4.ne.or.andcm",
	OpCmpEq:         "cmp.eq",
	OpCmpEqAnd:      "cmp.eq.and",
	OpCmpEqOr:       "cmp.eq.or",
	OpCmpEqOrAndcm:  "cmp.eq.or.andcm",
	OpCmpEqUnc:      "cmp.eq.unc",
	OpCmpGeAnd:      "cmp.ge.and",
	OpCmpGeOr:       "cmp.ge.or",
	OpCmpGeOrAndcm:  "cmp.ge.or.andcm",
	OpCmpGtAnd:      "cmp.gt.and",
	OpCmpGtOr:       "cmp.gt.or",
	OpCmpGtOrAndcm:  "cmp.gt.or.andcm",
	OpCmpLeAnd:      "cmp.le.and",
	OpCmpLeOr:       "cmp.le.or",
	OpCmpLeOrAndcm:  "cmp.le.or.andcm",
	OpCmpLt:         "cmp.lt",
	OpCmpLtAnd:      "cmp.lt.and",
	OpCmpLtOr:       "cmp.lt.or",
	OpCmpLtOrAndcm:  "cmp.lt.or.andcm",
	OpCmpLtUnc:      "cmp.lt.unc",
	OpCmpLtu:        "cmp.ltu",
	OpCmpLtuUnc:     "cmp.ltu.unc",
	OpCmpNeAnd:      "cmp.ne.and",
	OpCmpNeOr:       "cmp.ne.or",
	OpCmpNeOrAndcm:  "cmp.ne.or.andcm",
}

// String returns the assembler mnemonic.
func (o Opcode) String() string {
	if o >= numOpcodes {
		return "unknown"
	}
	return opcodeNames[o]
}

// Reserved reports whether o marks an undefined encoding.
func (o Opcode) Reserved() bool {
	return o <= OpWhite
}
