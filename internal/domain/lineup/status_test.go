package lineup

import "testing"

func TestClassifyStatus_Table(t *testing.T) {
	t.Parallel()

	cases := []struct {
		section    Section
		tag        TagKind
		wantStatus Status
		wantReason AbsenceReason
	}{
		{section: SectionPredicted, tag: TagNone, wantStatus: StatusStarter},
		{section: SectionPredicted, tag: TagDoubt, wantStatus: StatusStarterDoubt},
		{section: SectionPredicted, tag: TagSuspended, wantStatus: StatusAbsent, wantReason: AbsenceSuspended},
		{section: SectionPredicted, tag: TagOut, wantStatus: StatusAbsent, wantReason: AbsenceRuledOut},
		{section: SectionPredicted, tag: TagUnknown, wantStatus: StatusStarter},
		{section: SectionInjuries, tag: TagNone, wantStatus: StatusDoubt},
		{section: SectionInjuries, tag: TagDoubt, wantStatus: StatusDoubt},
		{section: SectionInjuries, tag: TagSuspended, wantStatus: StatusAbsent, wantReason: AbsenceSuspended},
		{section: SectionInjuries, tag: TagOut, wantStatus: StatusAbsent, wantReason: AbsenceRuledOut},
		{section: SectionInjuries, tag: TagUnknown, wantStatus: StatusDoubt},
	}

	for _, tc := range cases {
		gotStatus, gotReason := ClassifyStatus(tc.section, tc.tag)
		if gotStatus != tc.wantStatus || gotReason != tc.wantReason {
			t.Fatalf("classify (%s,%q): got=(%s,%q) want=(%s,%q)",
				tc.section, tc.tag, gotStatus, gotReason, tc.wantStatus, tc.wantReason)
		}
	}
}

func TestClassifyStatus_ReasonOnlyForAbsent(t *testing.T) {
	t.Parallel()

	for _, section := range []Section{SectionPredicted, SectionInjuries} {
		for _, tag := range []TagKind{TagNone, TagDoubt, TagSuspended, TagOut, TagUnknown} {
			status, reason := ClassifyStatus(section, tag)
			if (status == StatusAbsent) != (reason != "") {
				t.Fatalf("classify (%s,%q): status=%s reason=%q", section, tag, status, reason)
			}
		}
	}
}

func TestTagTable_Kind(t *testing.T) {
	t.Parallel()

	table := DefaultTagTable()
	cases := map[string]TagKind{
		"QUES":  TagDoubt,
		" out ": TagOut,
		"sus":   TagSuspended,
		"":      TagNone,
		"GTD":   TagUnknown,
	}
	for in, want := range cases {
		if got := table.Kind(in); got != want {
			t.Fatalf("kind %q: got=%q want=%q", in, got, want)
		}
	}
}

func TestClassifyStatus_OutTagIgnoresSection(t *testing.T) {
	t.Parallel()

	table := DefaultTagTable()
	injured, _ := ClassifyStatus(SectionInjuries, table.Kind("OUT"))
	predicted, _ := ClassifyStatus(SectionPredicted, table.Kind("OUT"))
	if injured != StatusAbsent || predicted != StatusAbsent {
		t.Fatalf("expected OUT to be absent in both sections, got injuries=%s predicted=%s", injured, predicted)
	}
	if got, _ := ClassifyStatus(SectionPredicted, table.Kind("QUES")); got != StatusStarterDoubt {
		t.Fatalf("expected QUES in predicted lineup to be starter_doubt, got=%s", got)
	}
}
