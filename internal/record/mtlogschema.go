// Code generated from the MT-log record layout in the original source's
// mt_log/mt_log_record.rs (see DESIGN.md). 130 positional fields across
// 4310 bytes: banking transaction log records used by the fixed-width
// record family.
package record

// MTLogSchema is the static fixed-width schema for the banking MT log
// format: 130 fields, 4310 bytes per record.
func MTLogSchema() *FixedWidthSchema {
	return &FixedWidthSchema{
		RecordBytes: 4310,
		Fields: []FixedField{
			{Name: "milog_rec_sys_date", Offset: 0, Length: 8, Kind: FWDate},
			{Name: "milog_rec_sys_time", Offset: 8, Length: 6, Kind: FWTime},
			{Name: "milog_rec_taskno", Offset: 14, Length: 7, Kind: FWUint},
			{Name: "milog_channel_code", Offset: 21, Length: 4, Kind: FWString},
			{Name: "milog_rec_rectype", Offset: 25, Length: 1, Kind: FWString},
			{Name: "milog_ts_ext_tran_code", Offset: 26, Length: 8, Kind: FWString},
			{Name: "milog_tran_type", Offset: 34, Length: 1, Kind: FWString},
			{Name: "milog_record_status", Offset: 35, Length: 1, Kind: FWString},
			{Name: "milog_atm_cardnumber", Offset: 36, Length: 16, Kind: FWString},
			{Name: "milog_terminal_id", Offset: 52, Length: 16, Kind: FWString},
			{Name: "milog_terminal_recno", Offset: 68, Length: 6, Kind: FWString},
			{Name: "milog_ts_teller_id", Offset: 74, Length: 8, Kind: FWString},
			{Name: "milog_ts_tran_serno", Offset: 82, Length: 6, Kind: FWUint},
			{Name: "milog_ts_proc_date", Offset: 88, Length: 8, Kind: FWString},
			{Name: "milog_eib_tranid", Offset: 96, Length: 4, Kind: FWString},
			{Name: "milog_eib_termid", Offset: 100, Length: 4, Kind: FWString},
			{Name: "milog_cics_applid", Offset: 104, Length: 4, Kind: FWString},
			{Name: "milog_next_day_flag", Offset: 108, Length: 1, Kind: FWString},
			{Name: "filler_r1", Offset: 109, Length: 1, Kind: FWString},
			{Name: "mit_isc_cics_tran_code", Offset: 110, Length: 4, Kind: FWString},
			{Name: "mit_isc_func_code", Offset: 114, Length: 8, Kind: FWString},
			{Name: "mit_isc_front_end_login_id", Offset: 122, Length: 8, Kind: FWString},
			{Name: "mit_isc_front_end_tran_serno", Offset: 130, Length: 6, Kind: FWUint},
			{Name: "mit_isc_reversal_flag", Offset: 136, Length: 1, Kind: FWString},
			{Name: "mit_isc_tran_time", Offset: 137, Length: 6, Kind: FWString},
			{Name: "mit_isc_tran_posting_date", Offset: 143, Length: 8, Kind: FWString},
			{Name: "mit_isc_tran_branch_code", Offset: 151, Length: 4, Kind: FWString},
			{Name: "mit_isc_channel_code", Offset: 155, Length: 4, Kind: FWString},
			{Name: "mit_isc_front_end_term_id", Offset: 159, Length: 16, Kind: FWString},
			{Name: "mit_isc_front_end_term_recno", Offset: 175, Length: 6, Kind: FWString},
			{Name: "mit_isc_repeat_ind", Offset: 181, Length: 1, Kind: FWString},
			{Name: "mit_mq_channel", Offset: 182, Length: 4, Kind: FWString},
			{Name: "mit_mq_trans_id", Offset: 186, Length: 4, Kind: FWString},
			{Name: "mit_mq_trans_desc", Offset: 190, Length: 20, Kind: FWString},
			{Name: "mit_mq_rquid", Offset: 210, Length: 36, Kind: FWString},
			{Name: "mit_acct1_acctnum", Offset: 246, Length: 20, Kind: FWString},
			{Name: "mit_acct2_acctnum", Offset: 266, Length: 20, Kind: FWString},
			{Name: "mit_acct3_acctnum", Offset: 286, Length: 10, Kind: FWString},
			{Name: "mit_acct3_filler", Offset: 296, Length: 8, Kind: FWString},
			{Name: "mit_bank_cd", Offset: 304, Length: 2, Kind: FWString},
			{Name: "mit_drcr_ind", Offset: 306, Length: 1, Kind: FWString},
			{Name: "mit_financial_type", Offset: 307, Length: 4, Kind: FWString},
			{Name: "mit_cheque_number", Offset: 311, Length: 10, Kind: FWUint},
			{Name: "mit_cheque_clrg_type", Offset: 321, Length: 2, Kind: FWString},
			{Name: "mit_dr_tran_amount", Offset: 323, Length: 15, Kind: FWInt},
			{Name: "mit_dr_tran_ccy", Offset: 338, Length: 3, Kind: FWString},
			{Name: "mit_dr_user_tran_code", Offset: 341, Length: 4, Kind: FWString},
			{Name: "mit_dr_ats_company_id", Offset: 345, Length: 6, Kind: FWString},
			{Name: "mit_dr_ats_desc", Offset: 351, Length: 3, Kind: FWString},
			{Name: "filler_r2", Offset: 354, Length: 4, Kind: FWString},
			{Name: "mit_cr_tran_amount", Offset: 358, Length: 15, Kind: FWInt},
			{Name: "mit_cr_tran_ccy", Offset: 373, Length: 3, Kind: FWString},
			{Name: "mit_cr_user_tran_code", Offset: 376, Length: 4, Kind: FWString},
			{Name: "mit_cr_ats_company_id", Offset: 380, Length: 6, Kind: FWString},
			{Name: "mit_cr_ats_desc", Offset: 386, Length: 3, Kind: FWString},
			{Name: "filler_r3", Offset: 389, Length: 4, Kind: FWString},
			{Name: "mit_chg_tran_amount", Offset: 393, Length: 15, Kind: FWInt},
			{Name: "mit_chg_tran_ccy", Offset: 408, Length: 3, Kind: FWString},
			{Name: "mit_chg_user_tran_code", Offset: 411, Length: 4, Kind: FWString},
			{Name: "mit_chg_tran_desc", Offset: 415, Length: 13, Kind: FWString},
			{Name: "mit_fee_process_ind", Offset: 428, Length: 2, Kind: FWString},
			{Name: "mit_fee_type_01", Offset: 430, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_01", Offset: 434, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_02", Offset: 449, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_02", Offset: 453, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_03", Offset: 468, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_03", Offset: 472, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_04", Offset: 487, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_04", Offset: 491, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_05", Offset: 506, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_05", Offset: 510, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_06", Offset: 525, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_06", Offset: 529, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_07", Offset: 544, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_07", Offset: 548, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_08", Offset: 563, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_08", Offset: 567, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_09", Offset: 582, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_09", Offset: 586, Length: 15, Kind: FWInt},
			{Name: "mit_fee_type_10", Offset: 601, Length: 4, Kind: FWString},
			{Name: "mit_fee_amount_10", Offset: 605, Length: 15, Kind: FWInt},
			{Name: "mit_bpay_extra_flag", Offset: 620, Length: 1, Kind: FWString},
			{Name: "mit_bpay_extra_data_1", Offset: 621, Length: 20, Kind: FWString},
			{Name: "mit_bpay_extra_data_2", Offset: 641, Length: 20, Kind: FWString},
			{Name: "mit_bpay_extra_data_3", Offset: 661, Length: 20, Kind: FWString},
			{Name: "mit_bpay_value_date", Offset: 681, Length: 8, Kind: FWString},
			{Name: "filler_r4", Offset: 689, Length: 15, Kind: FWString},
			{Name: "mit_stop_release_function", Offset: 704, Length: 36, Kind: FWString},
			{Name: "mit_wthd_fx_dep_no", Offset: 740, Length: 3, Kind: FWString},
			{Name: "mit_wthd_fx_reason", Offset: 743, Length: 2, Kind: FWString},
			{Name: "filler_r5", Offset: 745, Length: 70, Kind: FWString},
			{Name: "mit_stmt_chn_desc_acct1", Offset: 815, Length: 50, Kind: FWString},
			{Name: "mit_stmt_chn_desc_acct2", Offset: 865, Length: 50, Kind: FWString},
			{Name: "mit_bpay_partner_acct", Offset: 915, Length: 20, Kind: FWString},
			{Name: "mit_bpay_reconcile_ref", Offset: 935, Length: 14, Kind: FWString},
			{Name: "mit_bpay_interbr_region", Offset: 949, Length: 1, Kind: FWString},
			{Name: "mit_bpay_biller_postdate", Offset: 950, Length: 6, Kind: FWString},
			{Name: "mit_bpay_charge_type", Offset: 956, Length: 1, Kind: FWString},
			{Name: "mit_bpay_biller_code", Offset: 957, Length: 17, Kind: FWString},
			{Name: "mit_fcd_tran_code_1", Offset: 974, Length: 4, Kind: FWString},
			{Name: "mit_fcd_tran_code_2", Offset: 978, Length: 4, Kind: FWString},
			{Name: "mit_fcd_tran_code_3", Offset: 982, Length: 4, Kind: FWString},
			{Name: "mit_fcd_tran_code_4", Offset: 986, Length: 4, Kind: FWString},
			{Name: "mit_fcd_udt_1", Offset: 990, Length: 60, Kind: FWString},
			{Name: "mit_fcd_udt_2", Offset: 1050, Length: 60, Kind: FWString},
			{Name: "mit_fcd_udt_3", Offset: 1110, Length: 60, Kind: FWString},
			{Name: "mit_fcd_total_ccy", Offset: 1170, Length: 3, Kind: FWString},
			{Name: "mit_bpay_ref3", Offset: 1173, Length: 20, Kind: FWString},
			{Name: "mit_bpay_send_bank", Offset: 1193, Length: 3, Kind: FWString},
			{Name: "filler_r6", Offset: 1196, Length: 27, Kind: FWString},
			{Name: "mit_fin_annotation_text", Offset: 1223, Length: 50, Kind: FWString},
			{Name: "mit_bpay_mcn_verify_flag", Offset: 1273, Length: 1, Kind: FWString},
			{Name: "mit_bpay_mcn_confirm_flag", Offset: 1274, Length: 1, Kind: FWString},
			{Name: "mit_fin_accum_debit", Offset: 1275, Length: 1, Kind: FWString},
			{Name: "mit_fin_accum_credit", Offset: 1276, Length: 1, Kind: FWString},
			{Name: "mit_fin_accum_service_type", Offset: 1277, Length: 3, Kind: FWString},
			{Name: "mit_fin_original_rquid", Offset: 1280, Length: 36, Kind: FWString},
			{Name: "mit_stmt_chn_desc_acct3", Offset: 1316, Length: 50, Kind: FWString},
			{Name: "mit_2nd_trans_amt", Offset: 1366, Length: 15, Kind: FWString},
			{Name: "mit_2nd_trans_amt_purposed", Offset: 1381, Length: 1, Kind: FWString},
			{Name: "mit_2nd_related_ref_no", Offset: 1382, Length: 16, Kind: FWString},
			{Name: "filler_r7", Offset: 1398, Length: 29, Kind: FWString},
			{Name: "mit_fcd_cr_udt_1", Offset: 1427, Length: 60, Kind: FWString},
			{Name: "mit_fcd_cr_udt_2", Offset: 1487, Length: 60, Kind: FWString},
			{Name: "mit_fcd_cr_udt_3", Offset: 1547, Length: 60, Kind: FWString},
			{Name: "mit_fcd_fe_udt_1", Offset: 1607, Length: 60, Kind: FWString},
			{Name: "mit_fcd_fe_udt_2", Offset: 1667, Length: 60, Kind: FWString},
			{Name: "mit_fcd_fe_udt_3", Offset: 1727, Length: 60, Kind: FWString},
			{Name: "mit_fe_user_tran_code", Offset: 1787, Length: 4, Kind: FWString},
			{Name: "filler_log", Offset: 1791, Length: 2519, Kind: FWString},
		},
	}
}
