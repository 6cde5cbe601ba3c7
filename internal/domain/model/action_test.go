package model

import "testing"

// TestParseActionTokens проверяет разбор всех известных callback-токенов.
func TestParseActionTokens(t *testing.T) {
	cases := []struct {
		data string
		want ActionKind
	}{
		{CheckSubscriptionKey, ActionCheckSubscription},
		{StartTestKey, ActionStartTest},
		{GetDietKey, ActionGetDiet},
		{AdminBroadcastKey, ActionAdminBroadcast},
		{AdminUsersKey, ActionAdminUsers},
		{AdminStatsKey, ActionAdminStats},
		{AdminCancelKey, ActionAdminCancel},
		{AdminMenuKey, ActionAdminMenu},
		{AdminBroadcastConfirmKey, ActionAdminBroadcastConfirm},
	}

	for _, tc := range cases {
		t.Run(tc.data, func(t *testing.T) {
			got := ParseAction(tc.data)
			if got.Kind != tc.want {
				t.Errorf("ParseAction(%q): ожидался вид %d, получен %d", tc.data, tc.want, got.Kind)
			}
		})
	}
}

// TestParseActionCleansServicePrefix проверяет очистку служебного префикса,
// который Telegram добавляет к callback-данным.
func TestParseActionCleansServicePrefix(t *testing.T) {
	cases := []string{
		"\f" + StartTestKey,
		"\\f" + StartTestKey,
		"  " + StartTestKey + "  ",
	}
	for _, data := range cases {
		got := ParseAction(data)
		if got.Kind != ActionStartTest {
			t.Errorf("ParseAction(%q): ожидался ActionStartTest, получен %d", data, got.Kind)
		}
	}
}

// TestParseActionAnswer проверяет разбор токенов ответов на вопросы.
func TestParseActionAnswer(t *testing.T) {
	got := ParseAction("answer_2_4")
	if got.Kind != ActionAnswer {
		t.Fatalf("ожидался ActionAnswer, получен %d", got.Kind)
	}
	if got.QuestionIndex != 2 || got.OptionIndex != 4 {
		t.Errorf("ожидались индексы (2, 4), получены (%d, %d)", got.QuestionIndex, got.OptionIndex)
	}

	// Токен и разбор согласованы между собой.
	roundTrip := ParseAction(AnswerToken(3, 1))
	if roundTrip.Kind != ActionAnswer || roundTrip.QuestionIndex != 3 || roundTrip.OptionIndex != 1 {
		t.Errorf("AnswerToken и ParseAction рассогласованы: %+v", roundTrip)
	}
}

// TestParseActionUnknown проверяет, что мусорные и искаженные токены
// разбираются в ActionUnknown, а не в ошибку или панику.
func TestParseActionUnknown(t *testing.T) {
	cases := []string{
		"",
		"garbage",
		"answer_",
		"answer_1",
		"answer_1_2_3",
		"answer_x_2",
		"answer_1_y",
		"ANSWER_1_2",
		"start_test_extra",
	}
	for _, data := range cases {
		got := ParseAction(data)
		if got.Kind != ActionUnknown {
			t.Errorf("ParseAction(%q): ожидался ActionUnknown, получен %d", data, got.Kind)
		}
	}
}

// TestAnswerTokenFormat фиксирует wire-формат токена ответа: уже разосланные
// клавиатуры содержат токены именно в этом виде.
func TestAnswerTokenFormat(t *testing.T) {
	if got := AnswerToken(0, 0); got != "answer_0_0" {
		t.Errorf("ожидался токен answer_0_0, получен %q", got)
	}
	if got := AnswerToken(4, 5); got != "answer_4_5" {
		t.Errorf("ожидался токен answer_4_5, получен %q", got)
	}
}
